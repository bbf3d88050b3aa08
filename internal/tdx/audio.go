package tdx

import "github.com/tinyrange/dxbridge/internal/dx"

// Player is satisfied by wrappers that can be stopped and have a volume.
type Player interface {
	Resource
	SetVolume(volume int32) int32
	Stop() int32
}

// Sound is a sound effect loaded fully into memory.
type Sound struct{ resource }

// NewSound loads path with LoadSoundMem.
func NewSound(b dx.Backend, path string) *Sound {
	return &Sound{newResource(b, b.LoadSoundMem(path), path, func(b dx.Backend, h dx.Handle) int32 {
		return b.DeleteSoundMem(h, dx.FALSE)
	})}
}

func (*Sound) Kind() Kind { return KindSound }

func (s *Sound) view() Resource { return &Sound{s.weak()} }

// SetVolume sets the volume in the range 0-255.
func (s *Sound) SetVolume(volume int32) int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	return s.b.ChangeVolumeSoundMem(volume, h)
}

// Play starts playback. When topPosition is set playback restarts from the
// beginning, otherwise it resumes where Stop left off.
func (s *Sound) Play(playType dx.PlayType, topPosition bool) int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	return s.b.PlaySoundMem(h, playType, dx.Bool(topPosition))
}

func (s *Sound) Stop() int32 {
	h, ok := s.live()
	if !ok {
		return statusDisposed
	}
	return s.b.StopSoundMem(h)
}

// Music is a streamed music track such as a MIDI file.
type Music struct{ resource }

// NewMusic loads path with LoadMusicMem.
func NewMusic(b dx.Backend, path string) *Music {
	return &Music{newResource(b, b.LoadMusicMem(path), path, func(b dx.Backend, h dx.Handle) int32 {
		return b.DeleteMusicMem(h)
	})}
}

func (*Music) Kind() Kind { return KindMusic }

func (m *Music) view() Resource { return &Music{m.weak()} }

func (m *Music) SetVolume(volume int32) int32 {
	h, ok := m.live()
	if !ok {
		return statusDisposed
	}
	return m.b.SetVolumeMusicMem(volume, h)
}

func (m *Music) Play(playType dx.PlayType) int32 {
	h, ok := m.live()
	if !ok {
		return statusDisposed
	}
	return m.b.PlayMusicMem(h, playType)
}

func (m *Music) Stop() int32 {
	h, ok := m.live()
	if !ok {
		return statusDisposed
	}
	return m.b.StopMusicMem(h)
}
