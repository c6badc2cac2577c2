package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

var builtinSeeds = []string{
	"",
	"a = 1;",
	"server {\n    host = \"localhost\";\n    port = 8080;\n}\n",
	"mode = primary;\nratio = 2.5;\nok = true;\nnothing = null;\n",
	"list = [1, 2.5, \"x\", [true, null]];\n",
	"url = \"${HOST:-localhost}:${PORT:-80}\";\n",
	"outer { inner { deep = 1; } }\n",
	"s = \"line\\nbreak \\\"quoted\\\" tab\\t\";\n",
	"// comment\n/* block */ a = 1; # trailing\n",
	"value = 1e10; tiny = 2.5e-3;\n",
	"a = ;",
	"obj { unclosed = 1;",
	"arr = [1, 2",
	"$",
	"@include \"missing.cfgpp\";\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds walks the repository testdata tree, if present, and adds
// every .cfgpp file as a seed.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".cfgpp" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
