package main

import (
	"fmt"
	"os"

	"github.com/tinyrange/dxbridge/internal/timeslice"
)

// profile records asset loads and frame phases when -timeslice is set.
// The zero value records nothing.
type profile struct {
	rec     *timeslice.Recorder
	file    *os.File
	load    timeslice.Kind
	step    timeslice.Kind
	present timeslice.Kind
}

func startProfile(path string) (profile, error) {
	if path == "" {
		return profile{}, nil
	}

	rec := timeslice.NewRecorder()
	p := profile{
		rec:     rec,
		load:    rec.Register("asset_load", timeslice.FlagSetup),
		step:    rec.Register("frame_step", timeslice.FlagFrame),
		present: rec.Register("frame_present", timeslice.FlagFrame),
	}

	f, err := os.Create(path)
	if err != nil {
		return profile{}, fmt.Errorf("create timeslice file: %w", err)
	}
	if err := rec.Start(f); err != nil {
		f.Close()
		return profile{}, err
	}
	p.file = f
	return p, nil
}

func (p profile) close() error {
	if p.file == nil {
		return nil
	}
	err := p.rec.Close()
	if cerr := p.file.Close(); err == nil {
		err = cerr
	}
	return err
}
