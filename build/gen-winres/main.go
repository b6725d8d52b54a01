// gen-winres writes the Windows resource object for the launcher: the
// application manifest, the icon and version information.
// Usage: go run ./build/gen-winres [-o rsrc_windows_amd64.syso] [-arch amd64] [-ico icon.ico]
//
// The manifest asks for Common Controls v6, which the progress bar needs, and
// keeps the execution level at asInvoker: the launcher elevates itself.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tc-hib/winres"
	"github.com/tc-hib/winres/version"

	"github.com/user/noki-launcher/internal/icon"
)

const (
	appVersion  = "1.0.0.0"
	productName = "Noki Launcher"
)

func main() {
	output := flag.String("o", "rsrc_windows_amd64.syso", "output .syso file")
	arch := flag.String("arch", "amd64", "target architecture: 386, amd64, arm or arm64")
	icoOut := flag.String("ico", "", "also write the icon as an .ico file")
	flag.Parse()

	if err := generate(*output, winres.Arch(*arch), *icoOut); err != nil {
		fmt.Fprintf(os.Stderr, "gen-winres: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s\n", *output)
}

func generate(output string, arch winres.Arch, icoOut string) error {
	rs := winres.ResourceSet{}

	rs.SetManifest(winres.AppManifest{
		Description:         productName,
		ExecutionLevel:      winres.AsInvoker,
		UseCommonControlsV6: true,
	})

	ic, err := winres.NewIconFromResizedImage(icon.Render(256), icon.Sizes)
	if err != nil {
		return fmt.Errorf("icon: %w", err)
	}
	if err := rs.SetIcon(winres.Name("APPICON"), ic); err != nil {
		return fmt.Errorf("icon: %w", err)
	}

	vi := version.Info{}
	vi.SetFileVersion(appVersion)
	vi.SetProductVersion(appVersion)
	vi.Set(version.LangDefault, version.ProductName, productName)
	vi.Set(version.LangDefault, version.FileDescription, productName)
	rs.SetVersionInfo(vi)

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := rs.WriteObject(out, arch); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	if icoOut != "" {
		data, err := icon.ICO()
		if err != nil {
			return err
		}
		if err := os.WriteFile(icoOut, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", icoOut, err)
		}
	}
	return nil
}
