// Package npm builds the package-manager and scaffolding command lines used
// by the JavaScript stacks.
package npm

import (
	"fmt"
	"strings"

	"github.com/opmodel/stackgen/internal/process"
)

// PackageManager is the JavaScript package manager driving installs.
type PackageManager string

const (
	// NPM is the default package manager.
	NPM PackageManager = "npm"

	// Yarn is selected by the "Use Yarn" answer.
	Yarn PackageManager = "yarn"
)

// FromYarn maps the "Use Yarn" answer to a PackageManager.
func FromYarn(useYarn bool) PackageManager {
	if useYarn {
		return Yarn
	}
	return NPM
}

// ParsePackageManager parses a configured package manager name.
func ParsePackageManager(s string) (PackageManager, error) {
	switch PackageManager(strings.ToLower(strings.TrimSpace(s))) {
	case NPM:
		return NPM, nil
	case Yarn:
		return Yarn, nil
	default:
		return "", fmt.Errorf("unknown package manager %q (valid: npm, yarn)", s)
	}
}

// String implements fmt.Stringer.
func (pm PackageManager) String() string {
	return string(pm)
}

// Install returns the command installing all declared dependencies in dir.
func (pm PackageManager) Install(dir string) process.Command {
	if pm == Yarn {
		return process.Command{Name: "yarn", Dir: dir}
	}
	return process.Command{Name: "npm", Args: []string{"install"}, Dir: dir}
}

// Add returns the command adding packages to the manifest in dir.
// dev records them as development dependencies.
func (pm PackageManager) Add(dir string, dev bool, pkgs ...string) process.Command {
	var args []string
	if pm == Yarn {
		args = append(args, "add")
	} else {
		args = append(args, "install")
	}
	if dev {
		args = append(args, "-D")
	}
	args = append(args, pkgs...)
	return process.Command{Name: pm.String(), Args: args, Dir: dir}
}

// ScriptPrefix is the shell text preceding a script name: "yarn" or "npm run".
func (pm PackageManager) ScriptPrefix() string {
	if pm == Yarn {
		return "yarn"
	}
	return "npm run"
}

// RunScript returns the shell text for running a package.json script.
func (pm PackageManager) RunScript(script string) string {
	return pm.ScriptPrefix() + " " + script
}

// InstallCmdline is the shell text of Install, for documentation.
func (pm PackageManager) InstallCmdline() string {
	return pm.Install("").String()
}

// AddCmdline is the shell text of Add without packages, for documentation.
func (pm PackageManager) AddCmdline(dev bool) string {
	return pm.Add("", dev).String()
}

// ExecCmdline is the shell text for running a package binary without
// installing it globally.
func (pm PackageManager) ExecCmdline() string {
	if pm == Yarn {
		return "yarn dlx"
	}
	return "npx"
}

// Tool is the frontend build tool.
type Tool string

const (
	// Vite scaffolds with create-vite.
	Vite Tool = "vite"

	// CRA scaffolds with create-react-app.
	CRA Tool = "cra"
)

// ParseTool parses a configured frontend tool name.
func ParseTool(s string) (Tool, error) {
	switch Tool(strings.ToLower(strings.TrimSpace(s))) {
	case Vite:
		return Vite, nil
	case CRA:
		return CRA, nil
	default:
		return "", fmt.Errorf("unknown frontend tool %q (valid: vite, cra)", s)
	}
}

// String implements fmt.Stringer.
func (t Tool) String() string {
	return string(t)
}

// DisplayName is the label shown in prompts and documentation.
func (t Tool) DisplayName() string {
	if t == CRA {
		return "Create React App"
	}
	return "Vite"
}

// DevPort is the port the tool's development server listens on.
func (t Tool) DevPort() int {
	if t == CRA {
		return 3000
	}
	return 5173
}

// CreateCommand returns the scaffolding command that generates a React
// application into dir.
func CreateCommand(pm PackageManager, tool Tool, typescript bool, dir string) process.Command {
	var args []string
	name := pm.String()

	switch tool {
	case CRA:
		if pm == Yarn {
			args = []string{"create", "react-app", "."}
		} else {
			name = "npx"
			args = []string{"create-react-app", "."}
		}
		if typescript {
			args = append(args, "--template", "typescript")
		}
	default:
		template := "react"
		if typescript {
			template = "react-ts"
		}
		if pm == Yarn {
			args = []string{"create", "vite", ".", "--template", template}
		} else {
			args = []string{"create", "vite@latest", ".", "--", "--template", template}
		}
	}

	return process.Command{Name: name, Args: args, Dir: dir}
}
