// Command sectionctl drives the chapter section panel against a running API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"lms/apiclient"
	"lms/config"
	"lms/logging"
	"lms/panel/section"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

type flags struct {
	API      string
	Token    string
	Course   string
	Chapter  string
	LogLevel string
}

// logNotifier shows panel notices as log lines
type logNotifier struct{}

func (logNotifier) Success(msg string) { log.Info().Msg(msg) }
func (logNotifier) Error(msg string)   { log.Error().Msg(msg) }

// printNavigator prints the page the panel wants to open
type printNavigator struct{}

func (printNavigator) Push(path string) { fmt.Println(path) }

func main() {
	config.LoadConfig()

	f := &flags{}

	app := &cli.Command{
		Name:  "sectionctl",
		Usage: "Create, reorder and open chapter sections",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "api",
				Usage:       "base URL of the API",
				Sources:     cli.EnvVars("API_BASE_URL"),
				Value:       config.AppConfig.APIBaseURL,
				Destination: &f.API,
			},
			&cli.StringFlag{
				Name:        "token",
				Usage:       "teacher JWT",
				Sources:     cli.EnvVars("API_TOKEN"),
				Destination: &f.Token,
			},
			&cli.StringFlag{
				Name:        "course",
				Usage:       "course ID",
				Required:    true,
				Destination: &f.Course,
			},
			&cli.StringFlag{
				Name:        "chapter",
				Usage:       "chapter ID",
				Required:    true,
				Destination: &f.Chapter,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("LOG_LEVEL"),
				Value:       "info",
				Destination: &f.LogLevel,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.Setup(f.LogLevel, "console")
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "show the sections of the chapter",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					p, err := load(ctx, f)
					if err != nil {
						return err
					}
					printView(p.View())
					return nil
				},
			},
			{
				Name:      "create",
				Usage:     "add a section at the end of the chapter",
				ArgsUsage: "<title>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					p, err := load(ctx, f)
					if err != nil {
						return err
					}

					p.ToggleCreating()
					p.SetTitle(cmd.Args().First())
					if err := p.Create(ctx); err != nil {
						return err
					}
					printView(p.View())
					return nil
				},
			},
			{
				Name:      "move",
				Usage:     "drag the section at one index to another",
				ArgsUsage: "<from> <to>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					from, err1 := strconv.Atoi(cmd.Args().Get(0))
					to, err2 := strconv.Atoi(cmd.Args().Get(1))
					if err := errors.Join(err1, err2); err != nil {
						return fmt.Errorf("move needs two indexes: %w", err)
					}

					p, err := load(ctx, f)
					if err != nil {
						return err
					}
					if err := p.Move(ctx, from, to); err != nil {
						return err
					}
					printView(p.View())
					return nil
				},
			},
			{
				Name:      "reorder",
				Usage:     "set the full order of the chapter's sections",
				ArgsUsage: "<id>...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ids := cmd.Args().Slice()
					if len(ids) == 0 {
						return errors.New("reorder needs at least one section ID")
					}

					list := make([]apiclient.ReorderItem, len(ids))
					for i, id := range ids {
						list[i] = apiclient.ReorderItem{ID: id, Position: i}
					}

					p := newPanel(f, nil)
					if err := p.Reorder(ctx, list); err != nil {
						return err
					}
					printView(p.View())
					return nil
				},
			},
			{
				Name:      "edit",
				Usage:     "print the edit page of a section",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 1 {
						return errors.New("edit needs one section ID")
					}
					newPanel(f, nil).Edit(cmd.Args().First())
					return nil
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("sectionctl failed")
		os.Exit(1)
	}
}

func newPanel(f *flags, initial []apiclient.Section) *section.Panel {
	client := apiclient.New(f.API, f.Token)
	return section.New(f.Course, f.Chapter, initial, client, logNotifier{}, printNavigator{})
}

// load builds a panel and fills it with the server's copy of the chapter
func load(ctx context.Context, f *flags) (*section.Panel, error) {
	p := newPanel(f, nil)
	if err := p.Refresh(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

func printView(v section.View) {
	if v.EmptyLabel != "" {
		fmt.Println(v.EmptyLabel)
		return
	}
	for _, s := range v.Items {
		fmt.Printf("%2d. %s  [%s]\n", s.Position, s.Title, s.ID)
	}
}
