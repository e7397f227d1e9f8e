// Package autoload renders and writes the GDB auto-load script that loads
// the downloaded printer module whenever the matching library is debugged.
package autoload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/k3DW/debug/internal/messages"
)

// DefaultRoot is GDB's system auto-load directory.
const DefaultRoot = "/usr/share/gdb/auto-load"

// scriptSuffix follows the library's absolute path in the auto-load file
// name, per GDB's objfile auto-load convention.
const scriptSuffix = "-gdb.py"

// Contents renders the auto-load script. The only variable content is the
// module search path and the module identity; identical inputs produce
// byte-identical output.
func Contents(downloadDir string, moduleName string) string {
	var b strings.Builder
	b.WriteString("# Auto-generated by libcxx-printers. Do not edit.\n")
	b.WriteString("\n")
	b.WriteString("import gdb\n")
	b.WriteString("import sys\n")
	b.WriteString("\n")
	b.WriteString("# Update module path. GCC does this with relative paths for\n")
	b.WriteString("# relocatability, but this script is much simpler\n")
	fmt.Fprintf(&b, "pythondir = %q\n", downloadDir)
	b.WriteString("if not pythondir in sys.path:\n")
	b.WriteString("    sys.path.insert(0, pythondir)\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "import %s\n", moduleName)
	fmt.Fprintf(&b, "%s.register_libcxx_printer_loader()\n", moduleName)
	return b.String()
}

// FilePath joins GDB's auto-load root with the library's absolute path. The
// library path keeps its leading separator; the plain concatenation is
// deliberate.
func FilePath(root string, libraryPath string) string {
	return root + libraryPath + scriptSuffix
}

// Emit writes the auto-load script for libraryPath, overwriting any previous
// script unconditionally. Re-running with the same inputs reproduces the same
// file byte for byte.
func Emit(root string, libraryPath string, downloadDir string, moduleName string) (string, error) {
	path := FilePath(root, libraryPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf(messages.AutoLoadCreateDirFmt, filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(Contents(downloadDir, moduleName)), 0o644); err != nil {
		return "", fmt.Errorf(messages.AutoLoadWriteFmt, path, err)
	}
	return path, nil
}
