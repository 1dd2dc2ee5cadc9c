// Package app wires the entity stores, the fixture seed, and the
// persistence adapter into one explicitly constructed container. The
// container is built once at startup and passed to consumers; there is
// no package-level state. Cross-store referential integrity lives here,
// at the composition layer, never inside individual stores.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/sprintdeck/sprintdeck/internal/fixture"
	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/persist"
	"github.com/sprintdeck/sprintdeck/internal/store"
)

// App is the application state container.
type App struct {
	Projects     *store.Projects
	Sprints      *store.Sprints
	Tickets      *store.Tickets
	Staff        *store.Staffs
	Teams        *store.Teams
	Designations *store.Designations
	Statuses     *store.StatusOptions

	adapter  persist.Adapter
	session  *model.Session
	newID    func() string
	warnings []string
}

// Option configures the container at construction time.
type Option func(*options)

type options struct {
	storeOpts []store.Option
	newID     func() string
}

// WithClock overrides the timestamp source for all stores.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.storeOpts = append(o.storeOpts, store.WithClock(now)) }
}

// WithIDSource overrides the identifier generator for all stores and
// for session tokens.
func WithIDSource(newID func() string) Option {
	return func(o *options) {
		o.storeOpts = append(o.storeOpts, store.WithIDSource(newID))
		o.newID = newID
	}
}

// New builds the container: stores are seeded from the fixture data and
// the auth session is rehydrated from the adapter. A failing or empty
// load is not an error; the app starts with defaults and records a
// warning that the caller may surface.
func New(adapter persist.Adapter, seed fixture.Data, opts ...Option) *App {
	o := options{newID: model.NewID}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{
		Projects:     store.NewProjects(o.storeOpts...),
		Sprints:      store.NewSprints(o.storeOpts...),
		Tickets:      store.NewTickets(o.storeOpts...),
		Staff:        store.NewStaffs(o.storeOpts...),
		Teams:        store.NewTeams(o.storeOpts...),
		Designations: store.NewDesignations(o.storeOpts...),
		Statuses:     store.NewStatusOptions(o.storeOpts...),
		adapter:      adapter,
		newID:        o.newID,
	}

	a.Projects.Seed(seed.Projects)
	a.Sprints.Seed(seed.Sprints)
	a.Tickets.Seed(seed.Tickets)
	a.Staff.Seed(seed.Staff)
	a.Teams.Seed(seed.Teams)
	a.Designations.Seed(seed.Designations)
	a.Statuses.Seed(seed.StatusOptions)

	if adapter != nil {
		snap, found, err := adapter.Load()
		if err != nil {
			a.warnf("loading persisted state: %v (continuing with defaults)", err)
		} else if found {
			a.session = snap.Session
		}
	}

	return a
}

// warnf records a non-fatal condition for the presentation layer.
func (a *App) warnf(format string, args ...any) {
	a.warnings = append(a.warnings, fmt.Sprintf(format, args...))
}

// DrainWarnings returns accumulated warnings and clears them.
func (a *App) DrainWarnings() []string {
	w := a.warnings
	a.warnings = nil
	return w
}

// Session returns the current auth session, if any.
func (a *App) Session() (model.Session, bool) {
	if a.session == nil {
		return model.Session{}, false
	}
	return *a.session, true
}

// SignInInput carries the fields required to open a session.
type SignInInput struct {
	Name  string
	Email string
	Role  string
}

// SignIn opens a session for the given operator and persists it.
// Persistence is best-effort: a failing save records a warning and the
// session is still established.
func (a *App) SignIn(in SignInInput) (model.Session, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Session{}, fmt.Errorf("operator name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return model.Session{}, fmt.Errorf("operator email is required")
	}
	if in.Role == "" {
		in.Role = "member"
	}

	sess := model.Session{
		User: model.User{
			ID:        a.newID(),
			Name:      in.Name,
			Email:     in.Email,
			Role:      in.Role,
			CreatedAt: time.Now().UTC(),
		},
		Token: a.newID(),
	}
	a.session = &sess
	a.persistSession()
	return sess, nil
}

// SignOut clears the session and persists the cleared state.
func (a *App) SignOut() {
	a.session = nil
	a.persistSession()
}

func (a *App) persistSession() {
	if a.adapter == nil {
		return
	}
	if err := a.adapter.Save(persist.NewSnapshot(a.session)); err != nil {
		a.warnf("saving session: %v", err)
	}
}

// CascadeResult reports what a project delete removed alongside the
// project itself.
type CascadeResult struct {
	Sprints int `json:"sprints"`
	Tickets int `json:"tickets"`
}

// DeleteProject removes a project together with its sprints and
// tickets, so no orphaned references survive.
func (a *App) DeleteProject(id string) (CascadeResult, error) {
	var res CascadeResult
	if err := a.Projects.Delete(id); err != nil {
		return res, err
	}

	for _, s := range a.Sprints.List() {
		if s.ProjectID != id {
			continue
		}
		if err := a.Sprints.Delete(s.ID); err != nil {
			return res, fmt.Errorf("cascading sprint %s: %w", s.ID, err)
		}
		res.Sprints++
	}
	for _, t := range a.Tickets.List() {
		if t.ProjectID != id {
			continue
		}
		if err := a.Tickets.Delete(t.ID); err != nil {
			return res, fmt.Errorf("cascading ticket %s: %w", t.ID, err)
		}
		res.Tickets++
	}
	return res, nil
}

// DeleteSprint removes a sprint and detaches its tickets back to the
// backlog. It returns the number of detached tickets.
func (a *App) DeleteSprint(id string) (int, error) {
	if err := a.Sprints.Delete(id); err != nil {
		return 0, err
	}

	detached := 0
	empty := ""
	for _, t := range a.Tickets.List() {
		if t.SprintID != id {
			continue
		}
		if _, err := a.Tickets.Update(t.ID, store.TicketPatch{SprintID: &empty}); err != nil {
			return detached, fmt.Errorf("detaching ticket %s: %w", t.ID, err)
		}
		detached++
	}
	return detached, nil
}

// ResolveProject finds a project by identifier or short key.
func (a *App) ResolveProject(ref string) (model.Project, error) {
	if p, err := a.Projects.Get(ref); err == nil {
		return p, nil
	}
	return a.Projects.GetByKey(ref)
}

// ResolveTicket finds a ticket by identifier or display key.
func (a *App) ResolveTicket(ref string) (model.Ticket, error) {
	if t, err := a.Tickets.Get(ref); err == nil {
		return t, nil
	}
	return a.Tickets.GetByKey(ref)
}
