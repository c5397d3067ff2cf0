package window

import (
	"testing"

	"github.com/pkg/errors"

	"pyramids/internal/engineconfig"
	"pyramids/internal/logger"
)

func TestOpenHostNotBuilt(t *testing.T) {
	p := engineconfig.Default()
	p.Host = engineconfig.HostGLFW
	if Builtin == engineconfig.HostGLFW {
		p.Host = engineconfig.HostRaylib
	}
	h, err := Open(p, logger.New(logger.Options{}))
	if !errors.Is(err, ErrHostNotBuilt) {
		t.Fatalf("err = %v, want ErrHostNotBuilt", err)
	}
	if h != nil {
		t.Fatal("host returned with error")
	}
}

func TestOpenUnknownHost(t *testing.T) {
	p := engineconfig.Default()
	p.Host = "sdl"
	if _, err := Open(p, logger.New(logger.Options{})); err == nil || errors.Is(err, ErrHostNotBuilt) {
		t.Fatalf("err = %v", err)
	}
}
