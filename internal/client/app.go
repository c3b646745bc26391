// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-course-catalog/internal/adapter"
	"github.com/MKhiriev/go-course-catalog/internal/app"
	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/models"
)

type command struct {
	usage string
	// args is the number of positional operands the command requires.
	args int
	run  func(ctx context.Context, a *App, args []string) (any, error)
}

var commands = map[string]command{
	"register": {usage: "register < user.json", run: runRegister},
	"me":       {usage: "me", run: runCurrentUser},
	"token":    {usage: "token", run: runCreateToken},
	"courses":  {usage: "courses", run: runListCourses},
	"course":   {usage: "course <id>", args: 1, run: runGetCourse},
	"create":   {usage: "create < course.json", run: runCreateCourse},
	"update":   {usage: "update <id> < update.json", args: 1, run: runUpdateCourse},
	"delete":   {usage: "delete <id>", args: 1, run: runDeleteCourse},
	"version":  {usage: "version", run: runVersion},
}

// App runs a single client command.
type App struct {
	catalog adapter.CatalogAdapter

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// NewApp configures catalog with the given credentials. A token wins over
// Basic credentials.
func NewApp(catalog adapter.CatalogAdapter, credentials config.ClientCredentials, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	if credentials.EmailAddress != "" || credentials.Password != "" {
		catalog.SetCredentials(credentials.EmailAddress, credentials.Password)
	}
	if credentials.Token != "" {
		catalog.SetToken(credentials.Token)
	}

	return &App{catalog: catalog, in: in, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w; usage:\n%s", ErrMissingCommand, Usage())
	}

	name, operands := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w %q; usage:\n%s", ErrUnknownCommand, name, Usage())
	}
	if len(operands) < cmd.args {
		return fmt.Errorf("%w: usage: %s", ErrMissingArgument, cmd.usage)
	}

	a.logger.Debug().Str("command", name).Msg("running command")

	result, err := cmd.run(ctx, a, operands)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return a.print(result)
}

// Usage lists every command, one per line.
func Usage() string {
	lines := make([]string, 0, len(commands))
	for _, cmd := range commands {
		lines = append(lines, "  "+cmd.usage)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

func (a *App) print(result any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("error writing result: %w", err)
	}
	return nil
}

func (a *App) readInput(dst any) error {
	if err := json.NewDecoder(a.in).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func parseCourseID(raw string) (int64, error) {
	courseID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || courseID < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCourseID, raw)
	}
	return courseID, nil
}

func message(text string) models.MessageResponse {
	return models.MessageResponse{Message: text}
}

func runRegister(ctx context.Context, a *App, _ []string) (any, error) {
	var user models.User
	if err := a.readInput(&user); err != nil {
		return nil, err
	}
	if err := a.catalog.Register(ctx, user); err != nil {
		return nil, err
	}
	return message(app.MsgAccountCreated), nil
}

func runCurrentUser(ctx context.Context, a *App, _ []string) (any, error) {
	return a.catalog.CurrentUser(ctx)
}

func runCreateToken(ctx context.Context, a *App, _ []string) (any, error) {
	return a.catalog.CreateToken(ctx)
}

func runListCourses(ctx context.Context, a *App, _ []string) (any, error) {
	return a.catalog.ListCourses(ctx)
}

func runGetCourse(ctx context.Context, a *App, args []string) (any, error) {
	courseID, err := parseCourseID(args[0])
	if err != nil {
		return nil, err
	}
	return a.catalog.GetCourse(ctx, courseID)
}

func runCreateCourse(ctx context.Context, a *App, _ []string) (any, error) {
	var course models.Course
	if err := a.readInput(&course); err != nil {
		return nil, err
	}

	courseID, err := a.catalog.CreateCourse(ctx, course)
	if err != nil {
		return nil, err
	}
	return struct {
		ID int64 `json:"id"`
	}{courseID}, nil
}

func runUpdateCourse(ctx context.Context, a *App, args []string) (any, error) {
	courseID, err := parseCourseID(args[0])
	if err != nil {
		return nil, err
	}

	var update models.CourseUpdate
	if err = a.readInput(&update); err != nil {
		return nil, err
	}

	if err = a.catalog.UpdateCourse(ctx, courseID, update); err != nil {
		return nil, err
	}
	return message(app.MsgCourseUpdated), nil
}

func runDeleteCourse(ctx context.Context, a *App, args []string) (any, error) {
	courseID, err := parseCourseID(args[0])
	if err != nil {
		return nil, err
	}

	if err = a.catalog.DeleteCourse(ctx, courseID); err != nil {
		return nil, err
	}
	return message(app.MsgCourseDeleted), nil
}

func runVersion(ctx context.Context, a *App, _ []string) (any, error) {
	version, err := a.catalog.Version(ctx)
	if err != nil {
		return nil, err
	}
	return message(version), nil
}
