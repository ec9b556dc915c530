package testutil

import (
	"sync"

	"github.com/dalemusser/hydrasite/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

var (
	bootOnce sync.Once
	bootErr  error
)

// BootTemplatesOnce registers the shared layout templates and installs a
// booted engine for the package-level render functions. Feature templates
// register themselves in init, so importing the feature is enough.
func BootTemplatesOnce() error {
	bootOnce.Do(func() {
		resources.LoadSharedTemplates()
		eng := templates.New(false)
		log := zap.NewNop()
		if bootErr = eng.Boot(log); bootErr == nil {
			templates.UseEngine(eng, log)
		}
	})
	return bootErr
}

// MustBootTemplates is BootTemplatesOnce that fails the test on error.
func MustBootTemplates(t interface{ Fatalf(string, ...any) }) {
	if err := BootTemplatesOnce(); err != nil {
		t.Fatalf("boot templates: %v", err)
	}
}
