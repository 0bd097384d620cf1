// Package repository contains the raw-SQL data access layer.  This file
// defines sentinel errors shared across the repositories so handlers
// can translate failure scenarios into HTTP statuses without inspecting
// driver errors.
package repository

import "errors"

// Not-found sentinels, one per aggregate.  Handlers translate these
// into 404 responses.
var (
	ErrTourNotFound      = errors.New("tour not found")
	ErrShowNotFound      = errors.New("show not found")
	ErrFlightNotFound    = errors.New("flight not found")
	ErrHotelNotFound     = errors.New("hotel not found")
	ErrTransportNotFound = errors.New("transport not found")
	ErrTemplateNotFound  = errors.New("checklist template not found")
	ErrChecklistNotFound = errors.New("checklist not found")
	ErrMemberNotFound    = errors.New("team member not found")
)

// ErrNoChange indicates an UPDATE attempted to set fields equal to the
// current values.  Handlers may treat this as success.
var ErrNoChange = errors.New("no change")

// ErrConflict is returned when an operation cannot proceed because of
// dependent state.  Handlers should translate this into HTTP 409.
var ErrConflict = errors.New("conflict")
