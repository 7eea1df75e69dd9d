/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/Starkku/CSFTool/cmd/csftool/cmd"
)

func main() {
	cmd.Execute()
}
