package main

import (
	"fmt"
	"os"

	customimage "github.com/hashicorp/packer-plugin-gcloudimage/builder/gcloud/customimage"
	imageuri "github.com/hashicorp/packer-plugin-gcloudimage/datasource/imageuri"
	internalPluginVersion "github.com/hashicorp/packer-plugin-gcloudimage/version"
	"github.com/hashicorp/packer-plugin-sdk/plugin"
	"github.com/hashicorp/packer-plugin-sdk/version"
)

var (
	// Version is the main version number that is being run at the moment.
	Version = "0.0.1"

	// VersionPrerelease is A pre-release marker for the Version. If this is ""
	// (empty string) then it means that it is a final release. Otherwise, this
	// is a pre-release such as "dev" (in development), "beta", "rc1", etc.
	VersionPrerelease = "dev"

	// PluginVersion is used by the plugin set to allow Packer to recognize
	// what version this plugin is.
	PluginVersion = version.InitializePluginVersion(Version, VersionPrerelease)
)

func main() {
	pps := plugin.NewSet()
	pps.RegisterBuilder("custom-image", new(customimage.Builder))
	pps.RegisterDatasource("image-uri", new(imageuri.Datasource))
	pps.SetVersion(PluginVersion)
	internalPluginVersion.GcloudPluginVersion = PluginVersion
	err := pps.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
