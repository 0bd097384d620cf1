package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/tourops/tour-logistics/internal/model"
)

// ChecklistRepo manages checklist templates and the per-show instances
// stamped from them.  Items are stored as a JSON column on both tables;
// marshalling happens here so callers only ever see the item slices.
type ChecklistRepo struct {
	db *sql.DB
}

// NewChecklistRepo constructs a ChecklistRepo with the given DB handle.
func NewChecklistRepo(db *sql.DB) *ChecklistRepo {
	return &ChecklistRepo{db: db}
}

func decodeItems(raw []byte, items *[]model.ChecklistItem) error {
	if len(raw) == 0 {
		*items = nil
		return nil
	}
	return json.Unmarshal(raw, items)
}

// ListTemplates returns every checklist template, newest category groups
// sorting naturally by name.
func (r *ChecklistRepo) ListTemplates(ctx context.Context) ([]model.ChecklistTemplate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, category, items, created_at FROM checklist_templates ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.ChecklistTemplate
	for rows.Next() {
		var (
			t   model.ChecklistTemplate
			raw []byte
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &raw, &t.CreatedAt); err != nil {
			return nil, err
		}
		if err := decodeItems(raw, &t.Items); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetTemplate retrieves one checklist template by ID.
func (r *ChecklistRepo) GetTemplate(ctx context.Context, id uint64) (*model.ChecklistTemplate, error) {
	var (
		t   model.ChecklistTemplate
		raw []byte
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, category, items, created_at FROM checklist_templates WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.Category, &raw, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	if err := decodeItems(raw, &t.Items); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTemplate inserts a new checklist template.
func (r *ChecklistRepo) CreateTemplate(ctx context.Context, t *model.ChecklistTemplate) error {
	raw, err := json.Marshal(t.Items)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO checklist_templates (name, category, items) VALUES (?, ?, ?)`,
		t.Name, t.Category, raw)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		`SELECT created_at FROM checklist_templates WHERE id = ?`, t.ID).Scan(&t.CreatedAt)
}

// CreateInstance stamps a checklist onto a show.  The caller is expected
// to have reset item completion already; counts are derived here.
func (r *ChecklistRepo) CreateInstance(ctx context.Context, ci *model.ChecklistInstance) error {
	raw, err := json.Marshal(ci.Items)
	if err != nil {
		return err
	}
	ci.TotalCount = len(ci.Items)
	ci.CompletedCount = 0
	for _, it := range ci.Items {
		if it.Completed {
			ci.CompletedCount++
		}
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO checklist_instances (show_id, template_id, items, completed_count, total_count)
		VALUES (?, ?, ?, ?, ?)`,
		ci.ShowID, ci.TemplateID, raw, ci.CompletedCount, ci.TotalCount)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	ci.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM checklist_instances WHERE id = ?`, ci.ID).
		Scan(&ci.CreatedAt, &ci.UpdatedAt)
}

// GetInstanceByID retrieves a checklist instance without show scoping,
// since the item-toggle route addresses checklists directly.
func (r *ChecklistRepo) GetInstanceByID(ctx context.Context, id uint64) (*model.ChecklistInstance, error) {
	var (
		ci  model.ChecklistInstance
		raw []byte
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, show_id, template_id, items, completed_count, total_count, created_at, updated_at
		FROM checklist_instances WHERE id = ?`, id).
		Scan(&ci.ID, &ci.ShowID, &ci.TemplateID, &raw, &ci.CompletedCount, &ci.TotalCount,
			&ci.CreatedAt, &ci.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChecklistNotFound
		}
		return nil, err
	}
	if err := decodeItems(raw, &ci.Items); err != nil {
		return nil, err
	}
	return &ci, nil
}

// ListInstancesByShow returns a show's checklists with their template
// name and category attached for list views.
func (r *ChecklistRepo) ListInstancesByShow(ctx context.Context, showID uint64) ([]model.ChecklistInstance, error) {
	const q = `SELECT ci.id, ci.show_id, ci.template_id, ci.items, ci.completed_count, ci.total_count,
		ci.created_at, ci.updated_at, ct.name, ct.category
		FROM checklist_instances ci
		JOIN checklist_templates ct ON ct.id = ci.template_id
		WHERE ci.show_id = ?
		ORDER BY ci.id ASC`
	rows, err := r.db.QueryContext(ctx, q, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.ChecklistInstance
	for rows.Next() {
		var (
			ci  model.ChecklistInstance
			raw []byte
			tpl model.ChecklistTemplate
		)
		if err := rows.Scan(&ci.ID, &ci.ShowID, &ci.TemplateID, &raw, &ci.CompletedCount,
			&ci.TotalCount, &ci.CreatedAt, &ci.UpdatedAt, &tpl.Name, &tpl.Category); err != nil {
			return nil, err
		}
		if err := decodeItems(raw, &ci.Items); err != nil {
			return nil, err
		}
		tpl.ID = ci.TemplateID
		ci.Template = &tpl
		result = append(result, ci)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateInstanceItems rewrites an instance's items and recomputes the
// denormalized counts.
func (r *ChecklistRepo) UpdateInstanceItems(ctx context.Context, ci *model.ChecklistInstance) error {
	raw, err := json.Marshal(ci.Items)
	if err != nil {
		return err
	}
	ci.TotalCount = len(ci.Items)
	ci.CompletedCount = 0
	for _, it := range ci.Items {
		if it.Completed {
			ci.CompletedCount++
		}
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE checklist_instances SET items = ?, completed_count = ?, total_count = ?,
		updated_at = CURRENT_TIMESTAMP WHERE id = ? AND show_id = ?`,
		raw, ci.CompletedCount, ci.TotalCount, ci.ID, ci.ShowID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var one int
	if err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM checklist_instances WHERE id = ? AND show_id = ? LIMIT 1`,
		ci.ID, ci.ShowID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrChecklistNotFound
		}
		return err
	}
	return ErrNoChange
}

// DeleteInstance removes a checklist from a show.
func (r *ChecklistRepo) DeleteInstance(ctx context.Context, showID, id uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM checklist_instances WHERE id = ? AND show_id = ?`, id, showID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrChecklistNotFound
	}
	return nil
}
