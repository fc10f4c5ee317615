package prepare

import (
	"testing"

	"github.com/osse101/Despensa_Go/internal/testing/leaktest"
)

func TestMain(m *testing.M) {
	leaktest.VerifyTestMain(m)
}
