package cli

import (
	"log/slog"

	"github.com/marcodamonte/oop-concepts/accounts"
	"github.com/marcodamonte/oop-concepts/animals"
	"github.com/marcodamonte/oop-concepts/arithmetic"
	"github.com/marcodamonte/oop-concepts/fileio"
	"github.com/marcodamonte/oop-concepts/internal/config"
	"github.com/marcodamonte/oop-concepts/internal/console"
	"github.com/marcodamonte/oop-concepts/shapes"
	"github.com/marcodamonte/oop-concepts/validation"
	"github.com/marcodamonte/oop-concepts/vehicles"
)

// env is what a demo gets to run with.
type env struct {
	con *console.Console
	log *slog.Logger
	cfg config.Config
}

type demo struct {
	name  string
	title string
	run   func(e env)
}

// catalog lists the demos in the order the root command runs them.
var catalog = []demo{
	{"divide", "Arithmetic: handled failure, fallback, cleanup", func(e env) {
		arithmetic.Run(e.con, e.cfg.Arithmetic)
	}},
	{"bank", "Custom errors: recoverable vs misuse", func(e env) {
		accounts.Run(e.con, e.log, e.cfg.Accounts)
	}},
	{"encapsulation", "Encapsulation: state behind accessors", func(e env) {
		accounts.RunEncapsulation(e.con, e.cfg.Encapsulation)
	}},
	{"firstchar", "Propagated I/O errors: release on every path", func(e env) {
		fileio.RunFirstChar(e.con, e.log, e.cfg.Files)
	}},
	{"validate", "Explicit validation: raise on bad input", func(e env) {
		validation.Run(e.con, e.cfg.Validation)
	}},
	{"readfile", "Scoped resources: deferred close", func(e env) {
		fileio.RunLines(e.con, e.cfg.Files)
	}},
	{"shapes", "Polymorphism: interfaces and compile-time selection", func(e env) {
		shapes.Run(e.con)
	}},
	{"animals", "Abstraction: required and default behaviour", func(e env) {
		animals.Run(e.con)
	}},
	{"vehicles", "Inheritance by embedding: override and reuse", func(e env) {
		vehicles.Run(e.con)
	}},
}
