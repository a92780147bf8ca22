package plans

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/floorplan/internal/housespec"
	"github.com/JaimeStill/floorplan/internal/imagegen"
	"github.com/JaimeStill/floorplan/internal/prompt"
	"github.com/JaimeStill/floorplan/pkg/formatting"
	"github.com/JaimeStill/floorplan/pkg/pagination"
	"github.com/JaimeStill/floorplan/pkg/storage"
)

// Renderer produces an image for a prompt.
type Renderer interface {
	Run(ctx context.Context, prompt string) (*imagegen.Image, error)
}

type service struct {
	sessions   *Sessions
	renderer   Renderer
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
	cookie     string
	now        func() time.Time
}

// New creates the plan System.
func New(
	sessions *Sessions,
	renderer Renderer,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
	cookie string,
) System {
	return &service{
		sessions:   sessions,
		renderer:   renderer,
		storage:    store,
		logger:     logger.With("system", "plans"),
		pagination: pagination,
		cookie:     cookie,
		now:        time.Now,
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger, s.pagination, s.cookie)
}

func (s *service) Open(id string) (*Session, bool) {
	return s.sessions.Open(id)
}

func (s *service) End(sessionID string) {
	if s.sessions.End(sessionID) {
		s.logger.Info("session ended", "session", sessionID)
	}
}

func (s *service) List(sessionID string, page pagination.PageRequest) (*pagination.PageResult[Plan], error) {
	page.Normalize(s.pagination)

	var all []Plan
	err := s.with(sessionID, func(store *Store) error {
		for i, r := range store.Records() {
			all = append(all, newPlan(i, r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if term := page.Term(); term != "" {
		all = slices.DeleteFunc(all, func(p Plan) bool {
			return !matches(p, term)
		})
	}

	if page.Sort.Descending("index") {
		slices.Reverse(all)
	}

	result := pagination.Slice(all, page)
	return &result, nil
}

func (s *service) Find(sessionID string, index int) (*Plan, error) {
	r, err := s.record(sessionID, index)
	if err != nil {
		return nil, err
	}
	p := newPlan(index, r)
	return &p, nil
}

func (s *service) Image(sessionID string, index int) (*Download, error) {
	r, err := s.record(sessionID, index)
	if err != nil {
		return nil, err
	}
	return &Download{
		Filename:    r.Filename(r.Extension()),
		ContentType: r.ContentType,
		Data:        r.Image,
	}, nil
}

func (s *service) Spec(sessionID string, index int) (housespec.Draft, error) {
	var in housespec.Input
	err := s.with(sessionID, func(store *Store) error {
		var err error
		in, err = store.RequestRegenerate(index)
		return err
	})
	if err != nil {
		return housespec.Draft{}, err
	}
	return in.Draft(), nil
}

func (s *service) Generate(ctx context.Context, sessionID string, in housespec.Input) (*Generation, error) {
	var out *Generation
	err := s.with(sessionID, func(store *Store) error {
		var err error
		out, err = s.generate(ctx, sessionID, store, in)
		return err
	})
	return out, err
}

func (s *service) Regenerate(
	ctx context.Context,
	sessionID string,
	index int,
	override *housespec.Input,
) (*Generation, error) {
	var out *Generation
	err := s.with(sessionID, func(store *Store) error {
		in, err := store.RequestRegenerate(index)
		if err != nil {
			return err
		}
		if override != nil {
			in = *override
		}

		out, err = s.generate(ctx, sessionID, store, in)
		if err == nil {
			s.logger.Info("plan regenerated", "session", sessionID, "source", index, "index", out.Plan.Index)
		}
		return err
	})
	return out, err
}

func (s *service) RequestDelete(sessionID string, index int) (Pending, error) {
	var p Pending
	err := s.with(sessionID, func(store *Store) error {
		var err error
		p, err = store.RequestDelete(index)
		return err
	})
	return p, err
}

func (s *service) RequestClear(sessionID string) (Pending, error) {
	var p Pending
	err := s.with(sessionID, func(store *Store) error {
		p = store.RequestClearAll()
		return nil
	})
	return p, err
}

func (s *service) Pending(sessionID string) (*Pending, error) {
	var out *Pending
	err := s.with(sessionID, func(store *Store) error {
		if p, ok := store.Pending(); ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (s *service) Confirm(sessionID, token string) (*Outcome, error) {
	var out *Outcome
	err := s.with(sessionID, func(store *Store) error {
		p, err := store.Confirm(token)
		if err != nil {
			return err
		}
		out = &Outcome{
			Action:    p.Action,
			Index:     p.Index,
			Remaining: store.Len(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("pending action confirmed", "session", sessionID, "action", out.Action, "index", out.Index)
	return out, nil
}

func (s *service) Cancel(sessionID, token string) error {
	return s.with(sessionID, func(store *Store) error {
		return store.Cancel(token)
	})
}

func (s *service) Export(ctx context.Context, sessionID string, index int) (*Export, error) {
	r, err := s.record(sessionID, index)
	if err != nil {
		return nil, err
	}

	key := path.Join("sessions", sessionID, r.ID, r.Filename(r.Extension()))
	out := &Export{
		Key:  key,
		Size: formatting.FormatBytes(int64(len(r.Image)), 1),
	}

	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return nil, s.mapStorage(err)
	}
	if exists {
		return out, nil
	}

	if err := s.storage.Upload(ctx, key, bytes.NewReader(r.Image), r.ContentType); err != nil {
		return nil, s.mapStorage(err)
	}

	s.logger.Info("plan exported", "session", sessionID, "index", index, "key", key)
	return out, nil
}

func (s *service) generate(
	ctx context.Context,
	sessionID string,
	store *Store,
	in housespec.Input,
) (*Generation, error) {
	p := prompt.Build(in)

	img, err := s.renderer.Run(ctx, p.Text)
	if err != nil {
		return nil, err
	}

	r := Record{
		ID:          uuid.NewString(),
		Timestamp:   s.now(),
		Image:       img.Data,
		ContentType: img.ContentType,
		Summary:     Summarize(in),
		Features:    p.Rooms,
		Spec:        in,
	}
	index := store.Append(r)

	s.logger.Info("plan generated", "session", sessionID, "index", index, "bytes", len(r.Image))

	return &Generation{
		Plan:   newPlan(index, r),
		Prompt: p,
	}, nil
}

func (s *service) record(sessionID string, index int) (Record, error) {
	var r Record
	err := s.with(sessionID, func(store *Store) error {
		var err error
		r, err = store.Get(index)
		return err
	})
	return r, err
}

func (s *service) with(sessionID string, fn func(*Store) error) error {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	return sess.Do(fn)
}

func (s *service) mapStorage(err error) error {
	if errors.Is(err, storage.ErrDisabled) {
		return ErrExportDisabled
	}
	return fmt.Errorf("export plan: %w", err)
}

func matches(p Plan, search string) bool {
	search = strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Summary.Style), search) ||
		strings.Contains(strings.ToLower(p.Summary.RenderStyle), search) {
		return true
	}
	for _, f := range p.Features {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
