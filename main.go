package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/modsite/internal/build"
	"github.com/dtnitsch/modsite/models"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   models.DefaultConfigFile,
		Usage:   "site configuration file",
		EnvVars: []string{"MODSITE_CONFIG"},
	}
	dbFlag := &cli.StringFlag{
		Name:  "db",
		Usage: "build manifest database (default: <destination>/" + models.DefaultDBName + ")",
	}
	destinationFlag := &cli.StringFlag{
		Name:    "destination",
		Aliases: []string{"d"},
		Usage:   "output directory (default: " + models.DefaultOutputDir + ")",
	}

	return &cli.App{
		Name:  "modsite",
		Usage: "build PowerShell module documentation sites",
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "render content into the output directory",
				Action: build.BuildAction,
				Flags: []cli.Flag{
					configFlag,
					destinationFlag,
					dbFlag,
					&cli.StringFlag{
						Name:    "source",
						Aliases: []string{"s"},
						Usage:   "content directory (default: " + models.DefaultContentDir + ")",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "number of concurrent page workers",
					},
					&cli.StringFlag{
						Name:  "layout",
						Usage: "html/template layout file (default: built-in layout)",
					},
					&cli.StringFlag{
						Name:  "layouts",
						Usage: "directory of named layouts selected by front-matter layout (default: " + models.DefaultLayoutsDir + ")",
					},
					&cli.BoolFlag{
						Name:  "drafts",
						Usage: "include pages marked draft: true",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "rewrite every page even when unchanged",
					},
					&cli.BoolFlag{
						Name:  "no-manifest",
						Usage: "do not record the build in the manifest database",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "only log errors",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "log every page",
					},
				},
			},
			{
				Name:      "crumbs",
				Usage:     "print the breadcrumb data derived for URLs",
				ArgsUsage: "URL [URL...]",
				Action:    build.CrumbsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "yaml",
						Usage: "output format: yaml or json",
					},
				},
			},
			{
				Name:   "pages",
				Usage:  "list pages recorded in the build manifest",
				Action: build.PagesAction,
				Flags: []cli.Flag{
					configFlag,
					destinationFlag,
					dbFlag,
					&cli.StringFlag{
						Name:  "module",
						Usage: "only pages of this module name (e.g. Az)",
					},
					&cli.Int64Flag{
						Name:  "build",
						Usage: "only pages last written by this build ID",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum number of pages",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "text",
						Usage: "output format: text, yaml or json",
					},
				},
			},
		},
	}
}
