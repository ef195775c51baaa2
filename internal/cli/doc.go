// Package cli implements the swipr command-line interface.
//
// Each Cobra command parses its flags and hands off to a plain function
// that takes an io.Writer, so the command bodies can be tested without a
// terminal.
//
// # Command Structure
//
// The root command plays the animation in the terminal:
//
//	swipr                 - Full-screen terminal host
//	swipr window          - Desktop window host
//	swipr snapshot --at   - Print one frame from a simulated run
//	swipr timeline        - Print phase changes from a simulated run
//	swipr init            - Create or update .swipr.yaml
//	swipr version         - Build information
//	swipr completion      - Shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --no-color) live on the root command. Host flags
// such as --fps or --width only override the config when they were set on
// the command line, then the merged config is validated again.
//
// snapshot and timeline accept --json, which switches output to the
// JSONEnvelope format for scripts.
package cli
