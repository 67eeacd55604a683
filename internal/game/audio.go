package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the client sound effects.
type SoundKind int

const (
	SoundClick SoundKind = iota
	SoundChime
	SoundCoin
	SoundChop
	SoundSplash
)

// AudioSystem manages procedural sound effects and the map music bed.
type AudioSystem struct {
	ctx         *oto.Context
	ready       chan struct{}
	musicPlayer oto.Player
}

var globalAudio *AudioSystem

// InitAudio initializes the audio system. Callers skip it when audio
// is disabled in settings; every play call then no-ops.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	playSoundWithGain(kind, 1.0)
}

func PlaySoundWithGain(kind SoundKind, gain float64) {
	playSoundWithGain(kind, gain)
}

func playSoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil || gain <= 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat applies gentle tanh-like saturation to avoid harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundClick:
		return genClick()
	case SoundChime:
		return genChime()
	case SoundCoin:
		return genCoin()
	case SoundChop:
		return genChop()
	case SoundSplash:
		return genSplash()
	}
	return nil
}

// genClick: crisp short tap for walk targets and NPC pokes.
func genClick() []byte {
	n := SampleRate * 50 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.005, 0.5, 0.0, 0.1)
		freq := 1150 - 520*p
		s := fm(t, freq, 1.0, 0.55) * env * 0.34
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genChime: shrine bell, three overlapping pentatonic FM bells.
func genChime() []byte {
	freqs := []float64{783.99, 987.77, 1174.66} // G5 B5 D6
	noteLen := SampleRate * 90 / 1000
	tail := int(0.30 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.5, 0.06, 0.4)
			s := fm(t, freq, 2.756, 4.2*env) * env * 0.34
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genCoin: two quick bright dings.
func genCoin() []byte {
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := 987.77
		env := adsr(p/0.35, 0.01, 0.6, 0.05, 0.2)
		if p >= 0.35 {
			freq = 1318.51
			env = adsr((p-0.35)/0.65, 0.01, 0.55, 0.04, 0.3)
		}
		s := fm(t, freq, 3.1, 2.0*env) * env * 0.36
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genChop: axe thunk, a hard crack into a woody band-filtered body.
func genChop() []byte {
	n := int(0.13 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0xC80B)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		crack := 0.0
		if p < 0.12 {
			crack = lcg(&seed) * (1.0 - p/0.12) * 0.5
		}
		lp = lp*0.6 + lcg(&seed)*0.4
		body := lp * math.Exp(-p*13) * 0.3
		thump := math.Sin(2*math.Pi*(120-55*p)*t) * math.Exp(-p*19) * 0.4
		s := crack + body + thump
		putStereoF32(buf, i, softSat(s*0.8))
	}
	return buf
}

// genSplash: soft filtered noise swell for the fountain.
func genSplash() []byte {
	n := int(0.35 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x5F1A5)
	lp := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		lp = lp*0.8 + lcg(&seed)*0.2
		env := math.Sin(p*math.Pi) * 0.3
		putStereoF32(buf, i, softSat(lp*env))
	}
	return buf
}

// ---- Music system -------------------------------------------------------

type musicReader struct {
	t        float64
	seed     uint64
	measure  int
	chordIdx int
	mood     MapType
}

var musicVolume float64 = 0.12
var sfxVolume float64 = 0.58

// StartMapMusic swaps the streaming music bed to the given map's mood.
func StartMapMusic(m MapType) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.Close()
	}
	reader := &musicReader{
		seed: uint64(time.Now().UnixNano()),
		mood: m,
	}
	player := globalAudio.ctx.NewPlayer(reader)
	player.SetVolume(musicVolume)
	globalAudio.musicPlayer = player
	player.Play()
}

func SetMusicVolume(vol float64) {
	musicVolume = clampF(vol, 0, 1)
	if globalAudio != nil && globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.SetVolume(musicVolume)
	}
}

func SetSFXVolume(vol float64) {
	sfxVolume = clampF(vol, 0, 1)
}

// moodSong returns the chord loop and tempo (beats per second) for a map.
func moodSong(m MapType) ([][]float64, float64) {
	switch m {
	case MapCafe: // warm late-morning loop, 88 BPM
		return [][]float64{
			{261.6, 329.6, 392.0, 493.9}, // Cmaj7
			{220.0, 261.6, 329.6, 392.0}, // Am7
			{174.6, 220.0, 261.6, 349.2}, // Fmaj7
			{196.0, 246.9, 293.7, 370.0}, // G7
		}, 1.47
	case MapMarket: // plucky street groove, 110 BPM
		return [][]float64{
			{146.8, 220.0, 293.7}, // Dm
			{174.6, 261.6, 349.2}, // F
			{130.8, 196.0, 261.6}, // C
			{116.5, 174.6, 233.1}, // Bb
		}, 1.83
	default: // open-air calm, 72 BPM
		return [][]float64{
			{110.0, 164.8, 246.9, 329.6}, // Am add9
			{98.0, 146.8, 220.0, 293.7},  // G
			{87.3, 130.8, 220.0, 261.6},  // Fmaj7
			{110.0, 164.8, 220.0, 329.6}, // Am
		}, 1.2
	}
}

func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	chords, tempo := moodSong(m.mood)

	for i := 0; i < samples && i*8+7 < len(p); i++ {
		m.t += 1.0 / SampleRate
		beatLen := 1.0 / tempo
		trig := math.Mod(m.t, beatLen)
		currentBeat := int(m.t * tempo)

		if currentBeat/4 != m.measure {
			m.measure = currentBeat / 4
			m.chordIdx = (m.chordIdx + 1) % len(chords)
		}
		chord := chords[m.chordIdx]

		var s float64
		switch m.mood {
		case MapCafe:
			s = m.mixCafe(chord, tempo, trig, currentBeat)
		case MapMarket:
			s = m.mixMarket(chord, tempo, trig, currentBeat)
		default:
			s = m.mixForest(chord, tempo, trig, currentBeat)
		}

		duck := 1.0 - 0.10*math.Exp(-trig*16.0)
		s = softSat(s * duck)
		pan := 0.08 * math.Sin(2*math.Pi*0.08*m.t)
		left := softSat(s * (1 - pan))
		right := softSat(s * (1 + pan))
		putStereoF32LR(p, i, left, right)
	}
	return len(p), nil
}

// mixCafe: e-piano chord bed, brushed tap, lazy bass.
func (m *musicReader) mixCafe(chord []float64, tempo, trig float64, beat int) float64 {
	s := 0.0
	for _, freq := range chord {
		ph := 2 * math.Pi * freq * m.t
		vox := math.Sin(ph)*0.65 + math.Sin(ph*2.0)*0.18
		s += vox * 0.085
	}
	if beat%2 == 0 {
		bEnv := math.Exp(-trig * 8)
		s += fmBass(m.t, chord[0]/2, bEnv) * 0.7
	}
	if beat%2 == 1 && trig < 0.1 {
		s += lcg(&m.seed) * math.Exp(-trig*34.0) * 0.10
	}
	if beat%4 == 3 {
		arpEnv := adsr(math.Mod(m.t*tempo, 1.0), 0.02, 0.5, 0.1, 0.3)
		s += fmArp(m.t, chord[2]*2, arpEnv) * 0.4
	}
	return s
}

// mixMarket: pluck bass eighths, shaker, stab chords, light kick.
func (m *musicReader) mixMarket(chord []float64, tempo, trig float64, beat int) float64 {
	s := fmPad(m.t, chord, 0.5) * 0.5

	eighth := int(m.t*tempo*2) % 8
	eighthTrig := math.Mod(m.t, 1.0/(tempo*2))
	bassPattern := [8]bool{true, false, true, true, false, true, false, true}
	if bassPattern[eighth] {
		bEnv := math.Exp(-eighthTrig * 16)
		bPh := 2 * math.Pi * (chord[0] / 2) * m.t
		s += (triWave(bPh)*0.5 + softSquareWave(bPh*0.5)*0.2) * bEnv * 0.5
	}
	if eighth%2 == 1 {
		s += lcg(&m.seed) * math.Exp(-eighthTrig*26.0) * 0.08
	}
	stabPattern := [8]bool{false, false, true, false, false, true, false, false}
	if stabPattern[eighth] && eighthTrig < 0.1 {
		env := adsr(eighthTrig*10, 0.05, 0.5, 0.0, 0.2)
		s += fmArp(m.t, chord[1]*2, env) * 0.6
	}
	if beat%2 == 0 {
		s += kick(trig) * 0.5
	}
	return s
}

// mixForest: slow pad swells, a distant bell every other measure.
func (m *musicReader) mixForest(chord []float64, tempo, trig float64, beat int) float64 {
	_ = tempo
	s := fmPad(m.t, chord, 0.7) * 0.9

	if beat%8 == 0 {
		bellEnv := math.Exp(-trig * 2.2)
		s += fm(m.t, chord[len(chord)-1]*2, 2.756, 3.0*bellEnv) * bellEnv * 0.10
	}
	if beat%4 == 0 {
		s += kick(trig) * 0.22
	}
	// Wind bed.
	s += lcg(&m.seed) * 0.012
	return s
}

// ---- Music instruments (stateless per-sample, driven by m.t) ------------

// kick returns a kick drum sample given time-since-trigger in seconds.
func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*18.0) * 0.80
	click := math.Sin(2*math.Pi*2100*trig) * math.Exp(-trig*250.0) * 0.18
	return softSat(body + click)
}

// fmBass returns a warm FM bass sample; low modRatio keeps the tone smooth.
func fmBass(t, freq, env float64) float64 {
	b := fm(t, freq, 0.5, 1.25*env) * env * 0.48
	b += math.Sin(2*math.Pi*freq*t) * env * 0.26
	b += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.10
	return softSat(b)
}

// fmPad returns a lush pad sample from a chord, one detuned FM oscillator set per note.
func fmPad(t float64, chord []float64, env float64) float64 {
	s := 0.0
	detunes := [4]float64{-0.004, -0.001, 0.002, 0.005}
	for _, freq := range chord {
		for _, d := range detunes {
			f := freq * (1 + d)
			vib := 1 + 0.003*math.Sin(2*math.Pi*(0.23+f*0.0007)*t)
			s += fm(t, f*vib, 1.45, 0.75*env) * 0.048
		}
	}
	return softSat(s)
}

// fmArp returns an FM arpeggio sample for one note.
func fmArp(t, freq, env float64) float64 {
	s := fm(t, freq, 2.0, 3.2*env) * env * 0.20
	s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
	return softSat(s)
}

func triWave(phase float64) float64 {
	return (2.0 / math.Pi) * math.Asin(math.Sin(phase))
}

func softSquareWave(phase float64) float64 {
	return math.Tanh(math.Sin(phase) * 3.4)
}
