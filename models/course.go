// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Course is a learning course owned by exactly one user.
type Course struct {
	// CourseID is the store-assigned unique identifier.
	CourseID int64 `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// EstimatedTime and MaterialsNeeded are optional; nil means NULL in the store.
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`

	// UserID is the owner. It is assigned from the authenticated user on
	// creation and never changes afterwards.
	UserID int64 `json:"userId"`

	// Owner carries the public fields of the owning user when the course
	// was loaded together with it.
	Owner *UserResponse `json:"User,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}

// CourseUpdate carries a partial course update. Only non-nil fields are
// applied. The owner is not part of the update on purpose: ownership cannot
// be reassigned.
type CourseUpdate struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	EstimatedTime   *string `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u CourseUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.EstimatedTime == nil && u.MaterialsNeeded == nil
}

// Apply returns a copy of c with the non-nil fields of u applied.
func (u CourseUpdate) Apply(c Course) Course {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.EstimatedTime != nil {
		c.EstimatedTime = u.EstimatedTime
	}
	if u.MaterialsNeeded != nil {
		c.MaterialsNeeded = u.MaterialsNeeded
	}
	return c
}
