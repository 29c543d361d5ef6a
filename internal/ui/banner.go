// Package ui provides styled console output for the gateway.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// PrintBanner displays the ASCII art startup banner.
func PrintBanner() {
	fmt.Println()

	cyan := color.New(color.FgCyan, color.Bold)
	magenta := color.New(color.FgMagenta, color.Bold)
	white := color.New(color.FgWhite)
	dim := color.New(color.FgHiBlack)

	cyan.Println("╔══════════════════════════════════════════════════════╗")

	cyan.Print("║  ")
	magenta.Print("██╗     ██╗     ███╗   ███╗")
	white.Print("     ██████╗ ██╗    ██╗")
	cyan.Println("   ║")

	cyan.Print("║  ")
	magenta.Print("██║     ██║     ████╗ ████║")
	white.Print("    ██╔════╝ ██║    ██║")
	cyan.Println("   ║")

	cyan.Print("║  ")
	magenta.Print("██║     ██║     ██╔████╔██║")
	white.Print("    ██║  ███╗██║ █╗ ██║")
	cyan.Println("   ║")

	cyan.Print("║  ")
	magenta.Print("██║     ██║     ██║╚██╔╝██║")
	white.Print("    ██║   ██║██║███╗██║")
	cyan.Println("   ║")

	cyan.Print("║  ")
	magenta.Print("███████╗███████╗██║ ╚═╝ ██║")
	white.Print("    ╚██████╔╝╚███╔███╔╝")
	cyan.Println("   ║")

	cyan.Print("║  ")
	magenta.Print("╚══════╝╚══════╝╚═╝     ╚═╝")
	white.Print("     ╚═════╝  ╚══╝╚══╝ ")
	cyan.Println("   ║")

	cyan.Println("╠══════════════════════════════════════════════════════╣")

	cyan.Print("║  ")
	color.New(color.FgYellow, color.Bold).Print("LLM GATEWAY")
	dim.Print("  │  ")
	white.Print("model adapter service")
	dim.Print("  │  ")
	white.Print("v1.0.0")
	dim.Print("      ")
	cyan.Println("║")

	cyan.Println("╚══════════════════════════════════════════════════════╝")

	fmt.Println()
}

// PrintStartupInfo lists the configured providers and listen address.
func PrintStartupInfo(addr string, providers []string) {
	green := color.New(color.FgGreen, color.Bold)
	white := color.New(color.FgWhite)
	dim := color.New(color.FgHiBlack)

	green.Print("  ▸ listening  ")
	white.Println(addr)

	green.Print("  ▸ providers  ")
	white.Println(strings.Join(providers, ", "))

	dim.Println("  ▸ press Ctrl+C to stop")
	fmt.Println()
}
