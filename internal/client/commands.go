package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/dmitrymomot/eapd/pkg/apd"
	"github.com/dmitrymomot/eapd/pkg/logger"
	"github.com/dmitrymomot/eapd/pkg/session"
)

func (r *runner) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(r.app.out)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrUsage, fs.Args())
	}
	return nil
}

func (r *runner) login(ctx context.Context, args []string) error {
	fs := r.flags("login")
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := parse(fs, args); err != nil {
		return err
	}

	if *username == "" {
		return fmt.Errorf("%w: -u is required", ErrUsage)
	}
	if *password == "" {
		pw, err := r.readLine("password: ")
		if err != nil {
			return err
		}
		*password = pw
	}

	r.ctrl.Login(ctx, *username, *password)
	r.close()

	state := r.store.State()
	if f, ok := state.Session.(session.Failed); ok {
		return fmt.Errorf("%w: %s", ErrLoginFailed, f.Reason)
	}
	r.printf("logged in as %s\n", displayName(state.Profile.Data))
	return nil
}

func (r *runner) logout(ctx context.Context, args []string) error {
	if err := parse(r.flags("logout"), args); err != nil {
		return err
	}
	r.ctrl.Logout(ctx)
	r.close()
	r.printf("logged out\n")
	return nil
}

func (r *runner) whoami(ctx context.Context, args []string) error {
	if err := parse(r.flags("whoami"), args); err != nil {
		return err
	}

	profile, err := r.check(ctx)
	if err != nil {
		return err
	}
	r.close()
	r.printf("%s\n", displayName(profile))
	printProfile(r.app.out, profile)
	if docs, ok, err := r.loadedAPDs(); ok && err == nil {
		r.printf("  %-9s %d\n", "apds:", len(docs))
	}
	return nil
}

func (r *runner) checkCmd(ctx context.Context, args []string) error {
	if err := parse(r.flags("check"), args); err != nil {
		return err
	}

	profile, err := r.check(ctx)
	if err != nil {
		return err
	}
	r.close()
	r.printf("signed in as %s\n", displayName(profile))
	return nil
}

// check runs the auth check, treating a server slower than the configured
// timeout as a failed check.
func (r *runner) check(ctx context.Context) (session.Profile, error) {
	err := session.Race(ctx, r.app.checkTimeout, r.ctrl.CheckAuth, func(ctx context.Context) {
		r.store.Dispatch(ctx, session.AuthCheckFailure{})
	})
	if errors.Is(err, session.ErrFlowTimeout) {
		r.app.logger.WarnContext(ctx, "auth check timed out", logger.Duration(r.app.checkTimeout))
	}

	state := r.store.State()
	auth, ok := state.Session.(session.Authenticated)
	if !ok {
		return session.Profile{}, ErrNotAuthenticated
	}
	return auth.Profile, nil
}

func (r *runner) editProfile(ctx context.Context, args []string) error {
	fs := r.flags("edit-profile")
	fields := map[string]*string{
		"name":     fs.String("name", "", "display name"),
		"email":    fs.String("email", "", "email address"),
		"position": fs.String("position", "", "position or title"),
		"phone":    fs.String("phone", "", "phone number"),
		"state":    fs.String("state", "", "state or territory code"),
	}
	if err := parse(fs, args); err != nil {
		return err
	}

	profile, err := r.check(ctx)
	if err != nil {
		return err
	}

	set := 0
	fs.Visit(func(f *flag.Flag) {
		v := *fields[f.Name]
		switch f.Name {
		case "name":
			profile.Name = v
		case "email":
			profile.Email = v
		case "position":
			profile.Position = v
		case "phone":
			profile.Phone = v
		case "state":
			profile.State = strings.ToLower(v)
		}
		set++
	})
	if set == 0 {
		return fmt.Errorf("%w: nothing to change", ErrUsage)
	}

	r.ctrl.EditProfile(ctx, profile)
	r.close()

	if e, ok := r.lastEvent().(session.ProfileEditError); ok {
		return fmt.Errorf("%w: %s", ErrEditFailed, e.Reason)
	}
	r.printf("profile updated\n")
	printProfile(r.app.out, r.store.State().Profile.Data)
	return nil
}

func (r *runner) progress(ctx context.Context, args []string) error {
	fs := r.flags("progress")
	status := fs.String("status", "", "show the track for this status instead of fetching documents")
	if err := parse(fs, args); err != nil {
		return err
	}

	if *status != "" {
		s := apd.ParseStatus(*status)
		if !s.Known() {
			return fmt.Errorf("%w: unknown status %q", ErrUsage, *status)
		}
		r.close()
		r.printf("%s\n", s.Label())
		printTrack(r.app.out, apd.Progress(s))
		return nil
	}

	if _, err := r.check(ctx); err != nil {
		return err
	}
	docs, ok, err := r.loadedAPDs()
	if !ok {
		return ErrNotAuthenticated
	}
	if err != nil {
		return fmt.Errorf("list apds: %w", err)
	}
	r.close()
	if len(docs) == 0 {
		r.printf("no APDs\n")
		return nil
	}
	for i, doc := range docs {
		if i > 0 {
			r.printf("\n")
		}
		r.printf("%s (%s)\n", doc.Title, doc.Label)
		printTrack(r.app.out, doc.Progress)
	}
	return nil
}
