package ccsds122

import (
	"fmt"
	"os"

	"github.com/cocosip/ccsds122/codec"
	"github.com/cocosip/ccsds122/internal/bmpio"
)

// CompressFile reads a BMP at inputPath, runs the encode pipeline with the
// given number of DWT levels, and writes the container file to outputPath.
// Per spec.md §7, the output is only written once every encoding stage has
// succeeded, so a failure in an encoding stage never leaves a partial
// container on disk.
func CompressFile(inputPath, outputPath string, levels int) error {
	img, err := bmpio.Read(inputPath)
	if err != nil {
		return err
	}

	data, err := Encode(img.Height, img.Width, img.Channels, levels, img.Planes)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return codec.NewKindError(codec.KindInputIO, fmt.Errorf("ccsds122: write %s: %w", outputPath, err))
	}
	return nil
}

// DecompressFile reads a container file at inputPath, runs the decode
// pipeline, and writes the reconstructed BMP to outputPath.
func DecompressFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return codec.NewKindError(codec.KindInputIO, fmt.Errorf("ccsds122: read %s: %w", inputPath, err))
	}

	height, width, channels, planes, err := Decode(data)
	if err != nil {
		return err
	}

	return bmpio.Write(outputPath, &bmpio.Image{
		Height: height, Width: width, Channels: channels, Planes: planes,
	})
}
