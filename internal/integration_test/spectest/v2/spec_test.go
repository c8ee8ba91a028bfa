package spectest

import (
	"context"
	"embed"
	"testing"

	"github.com/wazevosystems/wazero-core/api"
	"github.com/wazevosystems/wazero-core/internal/engine/compiler"
	"github.com/wazevosystems/wazero-core/internal/engine/interpreter"
	"github.com/wazevosystems/wazero-core/internal/integration_test/spectest"
	"github.com/wazevosystems/wazero-core/internal/platform"
)

//go:embed testdata/*.wasm
//go:embed testdata/*.json
var testcases embed.FS

const enabledFeatures = api.CoreFeaturesV2

func TestCompiler(t *testing.T) {
	if !platform.CompilerSupported() {
		t.Skip()
	}
	spectest.Run(t, testcases, context.Background(), nil, compiler.NewEngine, enabledFeatures)
}

func TestInterpreter(t *testing.T) {
	spectest.Run(t, testcases, context.Background(), nil, interpreter.NewEngine, enabledFeatures)
}
