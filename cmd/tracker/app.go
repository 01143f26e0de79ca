package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"

	"github.com/carson-networks/track-server/internal/form"
	"github.com/carson-networks/track-server/internal/logging"
	"github.com/carson-networks/track-server/internal/operator"
	"github.com/carson-networks/track-server/internal/service"
	"github.com/carson-networks/track-server/internal/storage"
)

const dateLayout = "2006-01-02"

type tracker struct {
	log       *logrus.Logger
	store     *storage.Storage
	delegator *operator.OperatorDelegator
	tracks    *service.TrackService
	validator *form.AmountValidator
}

func newApp() *cli.App {
	t := &tracker{}

	trackFlags := []cli.Flag{
		&cli.StringFlag{Name: "title", Usage: "short title, at most 15 characters"},
		&cli.StringFlag{Name: "amount", Usage: "amount using the locale's decimal separator"},
		&cli.StringFlag{Name: "category", Usage: "one of " + strings.Join(categoryNames(), ", ")},
		&cli.StringFlag{Name: "date", Usage: "date as YYYY-MM-DD or RFC3339"},
	}

	return &cli.App{
		Name:  "tracker",
		Usage: "record personal finance tracks",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Value: "./data/tracks.db", Usage: "sqlite database path", EnvVars: []string{"TRACKER_DB_PATH"}},
			&cli.StringFlag{Name: "locale", Value: "en-US", Usage: "BCP 47 locale for amounts", EnvVars: []string{"TRACKER_LOCALE"}},
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "logrus level", EnvVars: []string{"TRACKER_LOG_LEVEL"}},
		},
		Before: t.setup,
		After:  t.close,
		Commands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "add a new track",
				Flags:  trackFlags,
				Action: t.withStore(t.add),
			},
			{
				Name:  "list",
				Usage: "list tracks in insertion order",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Usage: "page size, 0 lists everything unless --position is set"},
					&cli.IntFlag{Name: "position", Usage: "offset of the first track"},
				},
				Action: t.withStore(t.list),
			},
			{
				Name:      "show",
				Usage:     "show one track",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "raw", Usage: "dump the stored value"},
				},
				Action: t.withStore(t.show),
			},
			{
				Name:      "update",
				Usage:     "change fields of a track",
				ArgsUsage: "ID",
				Flags: append(trackFlags,
					&cli.BoolFlag{Name: "clear-date", Usage: "remove the stored date"},
				),
				Action: t.withStore(t.update),
			},
			{
				Name:      "delete",
				Usage:     "delete a track",
				ArgsUsage: "ID",
				Action:    t.withStore(t.delete),
			},
			{
				Name:   "categories",
				Usage:  "list the categories",
				Action: t.categories,
			},
		},
	}
}

func (t *tracker) setup(c *cli.Context) error {
	t.log = logging.SetupLogging(logging.ParseLevel(c.String("log-level")))
	t.log.SetOutput(c.App.ErrWriter)

	tag, err := language.Parse(c.String("locale"))
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.String("locale"), err)
	}
	t.validator = form.NewAmountValidatorForLocale(tag)
	return nil
}

// withStore opens the database before running action. Commands that never
// touch tracks leave the database file alone.
func (t *tracker) withStore(action cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		if err := t.openStore(c.String("db")); err != nil {
			return err
		}
		return action(c)
	}
}

func (t *tracker) openStore(dbPath string) error {
	if t.store != nil {
		return nil
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	t.store = store

	t.delegator = operator.NewOperatorDelegator(store, 1, t.log)
	t.delegator.Start()
	t.tracks = service.NewTrackService(store, t.delegator)
	return nil
}

func (t *tracker) close(*cli.Context) error {
	if t.delegator != nil {
		t.delegator.Stop()
	}
	if t.store != nil {
		return t.store.Close()
	}
	return nil
}

func (t *tracker) add(c *cli.Context) error {
	f := form.NewFormState(t.validator, service.CategoryPersonal)
	if err := t.applyFlags(c, f); err != nil {
		return err
	}

	var id uuid.UUID
	err := f.Submit(c.Context, func(ctx context.Context, track service.Track) error {
		var createErr error
		id, createErr = t.tracks.CreateTrack(ctx, track)
		return createErr
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, id.String())
	return nil
}

func (t *tracker) update(c *cli.Context) error {
	id, err := trackID(c)
	if err != nil {
		return err
	}
	existing, err := t.tracks.GetTrack(c.Context, id)
	if err != nil {
		return err
	}

	f := form.NewFormState(t.validator, existing.Category)
	f.LoadFrom(existing)
	if c.IsSet("title") {
		f.SetTitle("")
	}
	if c.IsSet("amount") {
		f.TypeAmount("")
	}
	if err := t.applyFlags(c, f); err != nil {
		return err
	}
	if c.Bool("clear-date") {
		f.SetDateEnabled(false)
	}

	err = f.Submit(c.Context, func(ctx context.Context, track service.Track) error {
		return t.tracks.UpdateTrack(ctx, id, track)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, id.String())
	return nil
}

// applyFlags types the given flags into f the way a user would fill the form.
func (t *tracker) applyFlags(c *cli.Context, f *form.FormState) error {
	if c.IsSet("title") {
		title := c.String("title")
		f.EnterTitle(title)
		if f.Title() != title {
			t.log.WithField("title", f.Title()).Warn("Title truncated")
		}
	}
	if c.IsSet("amount") {
		amount := c.String("amount")
		if !f.EnterAmount(amount) {
			t.log.WithFields(logrus.Fields{
				"input":  amount,
				"amount": f.AmountString(),
			}).Warn("Amount keystrokes rejected")
		}
	}
	if c.IsSet("category") {
		category, ok := service.ParseCategory(c.String("category"))
		if !ok {
			return fmt.Errorf("unknown category %q", c.String("category"))
		}
		f.SetCategory(category)
	}
	if c.IsSet("date") {
		date, err := parseDate(c.String("date"))
		if err != nil {
			return err
		}
		f.SetDate(date)
		f.SetDateEnabled(true)
	}
	return nil
}

func (t *tracker) list(c *cli.Context) error {
	var tracks []service.Track
	var next *service.TrackCursor
	var err error
	if limit := c.Int("limit"); limit > 0 || c.IsSet("position") {
		tracks, next, err = t.tracks.ListTracks(c.Context, &service.TrackCursor{
			Position: c.Int("position"),
			Limit:    limit,
		})
	} else {
		tracks, err = t.tracks.ListAll(c.Context)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAMOUNT\tCATEGORY\tDATE")
	for _, track := range tracks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			track.ID, track.Title, t.validator.FormatForEdit(track.Amount), track.Category, formatDate(track.Date))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if next != nil {
		fmt.Fprintf(c.App.Writer, "more: --position %d --limit %d\n", next.Position, next.Limit)
	}
	return nil
}

func (t *tracker) show(c *cli.Context) error {
	id, err := trackID(c)
	if err != nil {
		return err
	}
	track, err := t.tracks.GetTrack(c.Context, id)
	if err != nil {
		return err
	}

	if c.Bool("raw") {
		spew.Fdump(c.App.Writer, track)
		return nil
	}
	printTrack(c.App.Writer, t.validator, track)
	return nil
}

func (t *tracker) delete(c *cli.Context) error {
	id, err := trackID(c)
	if err != nil {
		return err
	}
	return t.tracks.DeleteTrack(c.Context, id)
}

func (t *tracker) categories(c *cli.Context) error {
	for _, name := range categoryNames() {
		fmt.Fprintln(c.App.Writer, name)
	}
	return nil
}

func printTrack(w io.Writer, validator *form.AmountValidator, track service.Track) {
	fmt.Fprintf(w, "id:       %s\n", track.ID)
	fmt.Fprintf(w, "title:    %s\n", track.Title)
	fmt.Fprintf(w, "amount:   %s\n", validator.FormatForEdit(track.Amount))
	fmt.Fprintf(w, "category: %s\n", track.Category)
	fmt.Fprintf(w, "date:     %s\n", formatDate(track.Date))
	fmt.Fprintf(w, "created:  %s\n", track.CreatedAt.Format(time.RFC3339))
}

func trackID(c *cli.Context) (uuid.UUID, error) {
	if c.NArg() != 1 {
		return uuid.Nil, fmt.Errorf("%s needs exactly one track ID", c.Command.Name)
	}
	id, err := uuid.FromString(c.Args().First())
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid track ID %q: %w", c.Args().First(), err)
	}
	return id, nil
}

func parseDate(value string) (time.Time, error) {
	if date, err := time.ParseInLocation(dateLayout, value, time.Local); err == nil {
		return date, nil
	}
	date, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or RFC3339", value)
	}
	return date, nil
}

func formatDate(date *time.Time) string {
	if date == nil {
		return "-"
	}
	return date.Local().Format(dateLayout)
}

func categoryNames() []string {
	categories := service.AllCategories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.String()
	}
	return names
}
