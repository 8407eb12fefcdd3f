// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command webplot plots columns of a data file, or displays an image
// through a color map, as an HTML page opened in a browser.
package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"cogentcore.org/webplot/figure"
	"cogentcore.org/webplot/web"
	"github.com/spf13/cobra"
)

var (
	title    string
	size     []int
	palette  int
	styls    []string
	xColumn  bool
	sheet    string
	outDir   string
	colorMap string
	verbose  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "webplot",
		Short: "Plot data files and images as browser charts",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "", "Directory to save the page to (default: open in a browser)")

	plotCmd := &cobra.Command{
		Use:   "plot [data.csv|data.xlsx]",
		Short: "Plot the numeric columns of a data file",
		Long: `plot reads the numeric columns of a .csv or .xlsx file and plots one
series per column. Each -s flag styles the matching column with a style
string such as "r.10~4"; see the webplot docs for the grammar.`,
		Args: cobra.ExactArgs(1),
		RunE: runPlot,
	}
	plotCmd.Flags().StringVarP(&title, "title", "t", "", "Figure title")
	plotCmd.Flags().IntSliceVar(&size, "size", nil, "Figure width,height in pixels")
	plotCmd.Flags().IntVarP(&palette, "palette", "p", 0, "Color palette index (0-9)")
	plotCmd.Flags().StringArrayVarP(&styls, "style", "s", nil, "Style string for each series, in column order")
	plotCmd.Flags().BoolVarP(&xColumn, "x-column", "x", false, "Use the first column as x coordinates")
	plotCmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name for xlsx input (default: first sheet)")

	imshowCmd := &cobra.Command{
		Use:   "imshow [image.png|image.jpg]",
		Short: "Display an image through a color map",
		Args:  cobra.ExactArgs(1),
		RunE:  runImshow,
	}
	imshowCmd.Flags().StringVarP(&colorMap, "map", "m", "", "Color map name (default from config; \"none\" embeds the image as-is)")

	rootCmd.AddCommand(plotCmd, imshowCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.apply()

	names, cols, err := readColumns(args[0], sheet)
	if err != nil {
		return err
	}

	var x []float64
	if xColumn {
		if len(cols) < 2 {
			return fmt.Errorf("-x needs at least two columns")
		}
		x, names, cols = cols[0], names[1:], cols[1:]
	}

	bd := figure.NewBuilder().
		SetTitle(title).
		SetSize(cfg.Width, cfg.Height).
		SetPalette(cfg.Palette)
	if cmd.Flags().Changed("palette") {
		bd.SetPalette(palette)
	}
	if len(size) == 2 {
		bd.SetSize(size[0], size[1])
	}

	for i, col := range cols {
		sr := figure.NewY(col)
		if x != nil {
			if sr, err = figure.New(x, col); err != nil {
				return err
			}
		}
		sr.SetName(names[i])
		if i < len(styls) && styls[i] != "" {
			if err := sr.SetStyleString(styls[i]); err != nil {
				return fmt.Errorf("series %d: %w", i+1, err)
			}
		}
		bd.Add(sr)
	}

	fig, err := bd.Build()
	if err != nil {
		return err
	}
	return deliver(web.Chart(fig))
}

func runImshow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.apply()

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	var pg *web.Page
	if colorMap == "none" {
		pg = web.Image(args[0], img)
	} else {
		pg, err = web.ImageMapped(args[0], img, colorMap)
		if err != nil {
			return err
		}
	}
	return deliver(pg)
}

// deliver saves the page or opens it, per the --out flag.
func deliver(pg *web.Page) error {
	if outDir == "" {
		return pg.Open()
	}
	path, err := pg.SaveTo(outDir)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
