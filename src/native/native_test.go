package native

import (
	"testing"

	"github.com/TTRSQ/hlcw/interface/backend/backendtest"
)

func TestConformance(t *testing.T) {
	backendtest.Run(t, New)
}
