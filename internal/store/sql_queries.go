// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-course-catalog/models"
)

const (
	usersTable   = "users"
	coursesTable = "courses"
)

var userColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email_address",
	"password",
	"created_at",
	"updated_at",
}

// courseColumns are selected from courses joined with the owner's public
// columns; the owner's password is never selected.
var courseColumns = []string{
	"c.id",
	"c.title",
	"c.description",
	"c.estimated_time",
	"c.materials_needed",
	"c.user_id",
	"c.created_at",
	"c.updated_at",
	"u.id",
	"u.first_name",
	"u.last_name",
	"u.email_address",
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("first_name", "last_name", "email_address", "password").
		Values(user.FirstName, user.LastName, user.EmailAddress, user.Password).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildCreateCourseQuery(b sq.StatementBuilderType, course models.Course) (string, []any, error) {
	return b.Insert(coursesTable).
		Columns("title", "description", "estimated_time", "materials_needed", "user_id").
		Values(course.Title, course.Description, nullableString(course.EstimatedTime), nullableString(course.MaterialsNeeded), course.UserID).
		Suffix("RETURNING id").
		ToSql()
}

func selectCourses(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(courseColumns...).
		From(coursesTable + " c").
		Join(usersTable + " u ON u.id = c.user_id")
}

func buildFindCourseQuery(b sq.StatementBuilderType, courseID int64) (string, []any, error) {
	return selectCourses(b).
		Where(sq.Eq{"c.id": courseID}).
		ToSql()
}

func buildFindAllCoursesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return selectCourses(b).
		OrderBy("c.id").
		ToSql()
}

// buildUpdateCourseQuery writes every editable column of course. user_id is
// deliberately absent so an update can never move a course to another owner.
func buildUpdateCourseQuery(b sq.StatementBuilderType, course models.Course) (string, []any, error) {
	return b.Update(coursesTable).
		Set("title", course.Title).
		Set("description", course.Description).
		Set("estimated_time", nullableString(course.EstimatedTime)).
		Set("materials_needed", nullableString(course.MaterialsNeeded)).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": course.CourseID}).
		ToSql()
}

func buildDeleteCourseQuery(b sq.StatementBuilderType, courseID int64) (string, []any, error) {
	return b.Delete(coursesTable).
		Where(sq.Eq{"id": courseID}).
		ToSql()
}

// nullableString turns a nil pointer into SQL NULL.
func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
