package audio

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8 // stereo float32
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundCrash SoundKind = iota
	SoundGameOver
	SoundSpeedUp
	SoundRestart
)

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

// softSat applies gentle tanh-like saturation without hard clipping.
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
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*frameBytes) }

func mixToBuf(mix []float64) []byte {
	buf := makeBuf(len(mix))
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// Generate renders a sound effect as interleaved stereo float32 LE PCM.
func Generate(kind SoundKind) []byte {
	switch kind {
	case SoundCrash:
		return genCrash()
	case SoundGameOver:
		return genGameOver()
	case SoundSpeedUp:
		return genSpeedUp()
	case SoundRestart:
		return genRestart()
	}
	return nil
}

// genCrash: noise thump under a descending FM "oof".
func genCrash() []byte {
	n := int(0.28 * SampleRate)
	mix := make([]float64, n)
	seed := uint64(0xC0FFEE)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.45, 0.15, 0.35)
		freq := 320 - 220*p
		s := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.45
		lp += (lcg(&seed) - lp) * 0.18
		s += lp * math.Exp(-p*9) * 0.6
		mix[i] = s
	}
	return mixToBuf(mix)
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []byte {
	dur := 0.75
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	return mixToBuf(mix)
}

// genSpeedUp: short ascending FM bell arpeggio.
func genSpeedUp() []byte {
	notes := []float64{440, 554.37, 659.25}
	noteStep := int(0.07 * SampleRate)
	total := len(notes)*noteStep + int(0.2*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			s := fm(t, freq, 3.5, 5.5*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	return mixToBuf(mix)
}

// genRestart: crisp click + brief high tone.
func genRestart() []byte {
	n := SampleRate * 65 / 1000
	mix := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		mix[i] = fm(t, freq, 1.0, 0.6) * env * 0.38
	}
	return mixToBuf(mix)
}
