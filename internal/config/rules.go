package config

import "github.com/lakshaymaurya-felt/devsweep/internal/project"

// DefaultRules returns the built-in project rules in evaluation order.
// Order matters: the first matching rule wins, so rules with stricter
// marker sets come before looser ones.
func DefaultRules() []project.Rule {
	return []project.Rule{
		// ── Game engines ────────────────────────────────────────
		{
			Kind:    "unity",
			Markers: []string{"Assets", "ProjectSettings"},
			Match:   project.MatchAll,
			Targets: []project.TargetSpec{
				{Path: "Library", Label: "Unity library"},
				{Path: "Temp", Label: "Unity temp"},
				{Path: "Obj", Label: "Unity obj"},
				{Path: "Logs", Label: "Unity logs"},
			},
		},

		// ── Systems languages ───────────────────────────────────
		{
			Kind:    "rust",
			Markers: []string{"Cargo.toml"},
			Targets: []project.TargetSpec{
				{Path: "target", Label: "target/"},
			},
		},
		{
			Kind:    "zig",
			Markers: []string{"build.zig"},
			Targets: []project.TargetSpec{
				{Path: "zig-cache", Label: "zig-cache/"},
				{Path: ".zig-cache", Label: ".zig-cache/"},
				{Path: "zig-out", Label: "zig-out/"},
			},
		},

		// ── JavaScript ──────────────────────────────────────────
		{
			Kind:    "node",
			Markers: []string{"package.json"},
			Targets: []project.TargetSpec{
				{Path: "node_modules", Label: "node_modules/"},
				{Path: ".next", Label: ".next/"},
				{Path: ".nuxt", Label: ".nuxt/"},
				{Path: ".svelte-kit", Label: ".svelte-kit/"},
				{Path: ".turbo", Label: ".turbo/"},
				{Path: ".parcel-cache", Label: ".parcel-cache/"},
				{Path: ".angular/cache", Label: ".angular/cache/"},
			},
		},

		// ── Python ──────────────────────────────────────────────
		{
			Kind:    "python",
			Markers: []string{"pyproject.toml", "setup.py", "setup.cfg", "requirements.txt", "Pipfile"},
			Targets: []project.TargetSpec{
				{Path: "__pycache__", Label: "__pycache__/"},
				{Path: ".venv", Label: ".venv/"},
				{Path: "venv", Label: "venv/"},
				{Path: ".pytest_cache", Label: ".pytest_cache/"},
				{Path: ".mypy_cache", Label: ".mypy_cache/"},
				{Path: ".ruff_cache", Label: ".ruff_cache/"},
				{Path: ".tox", Label: ".tox/"},
				{Path: "*.egg-info", Label: "egg-info"},
			},
		},

		// ── JVM ─────────────────────────────────────────────────
		{
			Kind:    "java",
			Markers: []string{"pom.xml"},
			Targets: []project.TargetSpec{
				{Path: "target", Label: "target/"},
			},
		},
		{
			Kind:    "java",
			Markers: []string{"build.gradle", "build.gradle.kts", "settings.gradle", "settings.gradle.kts"},
			Targets: []project.TargetSpec{
				{Path: "build", Label: "build/"},
				{Path: ".gradle", Label: ".gradle/"},
			},
		},
		{
			Kind:    "scala",
			Markers: []string{"build.sbt"},
			Targets: []project.TargetSpec{
				{Path: "target", Label: "target/"},
				{Path: "project/target", Label: "project/target/"},
			},
		},

		// ── .NET ────────────────────────────────────────────────
		{
			Kind:    "dotnet",
			Markers: []string{"*.csproj", "*.fsproj", "*.vbproj", "*.sln"},
			Targets: []project.TargetSpec{
				{Path: "bin", Label: "bin/"},
				{Path: "obj", Label: "obj/"},
			},
		},

		// ── Go ──────────────────────────────────────────────────
		{
			Kind:    "go",
			Markers: []string{"go.mod"},
			Targets: []project.TargetSpec{
				{Path: "vendor", Label: "vendor/"},
			},
		},

		// ── Scripting ecosystems ────────────────────────────────
		{
			Kind:    "ruby",
			Markers: []string{"Gemfile"},
			Targets: []project.TargetSpec{
				{Path: "vendor/bundle", Label: "vendor/bundle/"},
				{Path: ".bundle", Label: ".bundle/"},
			},
		},
		{
			Kind:    "php",
			Markers: []string{"composer.json"},
			Targets: []project.TargetSpec{
				{Path: "vendor", Label: "vendor/"},
			},
		},
		{
			Kind:    "elixir",
			Markers: []string{"mix.exs"},
			Targets: []project.TargetSpec{
				{Path: "_build", Label: "_build/"},
				{Path: "deps", Label: "deps/"},
			},
		},

		// ── Functional ──────────────────────────────────────────
		{
			Kind:    "haskell",
			Markers: []string{"stack.yaml", "*.cabal", "cabal.project"},
			Targets: []project.TargetSpec{
				{Path: ".stack-work", Label: ".stack-work/"},
				{Path: "dist-newstyle", Label: "dist-newstyle/"},
			},
		},

		// ── Mobile ──────────────────────────────────────────────
		{
			Kind:    "swift",
			Markers: []string{"Package.swift"},
			Targets: []project.TargetSpec{
				{Path: ".build", Label: ".build/"},
			},
		},
		{
			Kind:    "dart",
			Markers: []string{"pubspec.yaml"},
			Targets: []project.TargetSpec{
				{Path: ".dart_tool", Label: ".dart_tool/"},
				{Path: "build", Label: "build/"},
			},
		},

		// ── Infrastructure ──────────────────────────────────────
		{
			Kind:    "terraform",
			Markers: []string{"*.tf"},
			Targets: []project.TargetSpec{
				{Path: ".terraform", Label: ".terraform/"},
			},
		},

		// ── Native builds ───────────────────────────────────────
		{
			Kind:    "cmake",
			Markers: []string{"CMakeLists.txt"},
			Targets: []project.TargetSpec{
				{Path: "build", Label: "build/"},
				{Path: "cmake-build-debug", Label: "cmake-build-debug/"},
				{Path: "cmake-build-release", Label: "cmake-build-release/"},
			},
		},
	}
}

// DefaultIgnore returns the directory name patterns the walker never enters.
func DefaultIgnore() []string {
	return []string{
		// Any hidden folder
		".*",

		// Dependency trees outside a recognised project
		"node_modules",
		"vendor",
		"__pycache__",

		// OS bookkeeping
		"$RECYCLE.BIN",
		"System Volume Information",
	}
}
