// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime support for programs built on hioload-generics: harness
// configuration, generator metrics and debug introspection.
//
// Provides:
//   - HarnessConfig loaded from YAML, .env and HIOLOAD_* variables
//   - MetricsRegistry with per-generator draw counters
//   - DebugProbes for state export
package control
