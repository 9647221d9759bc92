package core

// fakeRegister is a test implementation of Register that logs every write
type fakeRegister struct {
	value  uint32
	writes []uint32
	reads  int
}

func (r *fakeRegister) Get() uint32 {
	r.reads++
	return r.value
}

func (r *fakeRegister) Set(value uint32) {
	r.value = value
	r.writes = append(r.writes, value)
}

func (r *fakeRegister) SetBits(value uint32) {
	r.Set(r.value | value)
}

func (r *fakeRegister) ClearBits(value uint32) {
	r.Set(r.value &^ value)
}

func (r *fakeRegister) HasBits(value uint32) bool {
	return r.Get()&value != 0
}

func (r *fakeRegister) ReplaceBits(value uint32, mask uint32, pos uint8) {
	r.Set(r.value&^(mask<<pos) | value<<pos)
}

// fakeTimer is a PeriodTimer whose overflows are scripted by the test.
// gaps lists how many polls pass before each successive overflow is raised.
type fakeTimer struct {
	programmed []TimerConfig
	started    bool
	flag       bool
	gaps       []int // polls before each successive overflow
	polls      int
	clears     int
}

func (t *fakeTimer) Program(cfg TimerConfig) error {
	t.programmed = append(t.programmed, cfg)
	return nil
}

func (t *fakeTimer) Start() {
	t.started = true
}

func (t *fakeTimer) Overflowed() bool {
	t.polls++
	if !t.flag && len(t.gaps) > 0 {
		if t.gaps[0] == 0 {
			t.gaps = t.gaps[1:]
			t.flag = true
		} else {
			t.gaps[0]--
		}
	}
	return t.flag
}

func (t *fakeTimer) ClearOverflow() {
	t.clears++
	t.flag = false
}

// pairCall is one recorded SetPair call
type pairCall struct {
	high, low Line
}

// fakeOutput records SetPair calls
type fakeOutput struct {
	configured bool
	calls      []pairCall
}

func (o *fakeOutput) Configure() {
	o.configured = true
}

func (o *fakeOutput) SetPair(high, low Line) {
	o.calls = append(o.calls, pairCall{high, low})
}

// fakeGate records Enable calls
type fakeGate struct {
	enabled int
}

func (g *fakeGate) Enable() {
	g.enabled++
}
