package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ChemCoat/ChemCoat-Backend/src/db"
	"github.com/ChemCoat/ChemCoat-Backend/src/logger"
	"github.com/ChemCoat/ChemCoat-Backend/src/migration"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const usage = `migrate - ChemCoat content migration pipeline

Moves products, projects, clients, approvals, media files and page content
from the legacy sources (spreadsheet + photo directories) into the site
database, with backup, validation and rollback.

Usage:
  migrate [flags]

Flags:
  --dry-run           report synthetic results without touching the store
  --verbose           extra log output
  --step-by-step      pause for confirmation before each step
  --skip-validation   skip the post-load validation step
  --rollback          restore the earliest initial backup and exit
  --help              print this help and exit

Environment:
  SQLITE_PATH         embedded store file (default data/chemcoat.db)
  MIGRATE_SOURCES     root of the legacy source tree (default ./legacy)
`

// stdinConfirmer implements the step-by-step pause: it blocks on the
// terminal until the operator answers.
type stdinConfirmer struct {
	in *bufio.Reader
}

func (c *stdinConfirmer) Confirm(stepName string) bool {
	fmt.Printf("Run step %q? [y/N] ", stepName)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func main() {
	dryRun := flag.Bool("dry-run", false, "report synthetic results without mutating the store")
	verbose := flag.Bool("verbose", false, "extra log output")
	stepByStep := flag.Bool("step-by-step", false, "pause for confirmation between steps")
	skipValidation := flag.Bool("skip-validation", false, "skip the validation step")
	rollback := flag.Bool("rollback", false, "restore the earliest initial backup and exit")
	help := flag.Bool("help", false, "print usage and exit")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if *help {
		fmt.Print(usage)
		os.Exit(0)
	}

	log, err := logger.New(os.Getenv("LOG_MODE"), *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	sourcesRoot := os.Getenv("MIGRATE_SOURCES")
	if sourcesRoot == "" {
		sourcesRoot = "legacy"
	}

	opts := migration.Options{
		DryRun:         *dryRun,
		StepByStep:     *stepByStep,
		SkipValidation: *skipValidation,
		Sources: migration.SourcePaths{
			ProductsXLSX:  sourcesRoot + "/products.xlsx",
			ProductsSheet: "Products",
			ProjectsDir:   sourcesRoot + "/Projects",
			ClientsDir:    sourcesRoot + "/Clients",
			ApprovalsDir:  sourcesRoot + "/Approvals",
			MediaRoot:     "public/media",
		},
		StorePath:  db.SQLitePath(),
		BackupDir:  "backups",
		ReportsDir: "reports",
	}
	if *stepByStep {
		opts.Confirmer = &stdinConfirmer{in: bufio.NewReader(os.Stdin)}
	}

	if *rollback {
		orch := migration.NewOrchestrator(nil, log, opts)
		if err := orch.RollbackToInitial(); err != nil {
			log.Error("rollback failed", "error", err)
			os.Exit(1)
		}
		log.Info("store restored to initial backup")
		os.Exit(0)
	}

	// A dry run must leave the filesystem byte-identical, and opening the
	// sqlite store creates the file when it does not exist yet, so the
	// connection is only opened for real runs.
	var conn *gorm.DB
	if !*dryRun {
		conn, err = db.Open(sqlite.Open(opts.StorePath))
		if err != nil {
			log.Error("could not open store", "error", err)
			os.Exit(1)
		}
	}

	orch := migration.NewOrchestrator(conn, log, opts)
	report, err := orch.Run()
	fmt.Println(report.Summary())
	if err != nil {
		os.Exit(1)
	}
}
