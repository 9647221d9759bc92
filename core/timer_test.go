package core

import (
	"errors"
	"testing"
	"time"
)

func TestComputeTimerConfig(t *testing.T) {
	testCases := []struct {
		name    string
		bus     uint64
		target  uint64
		divisor uint16
		reload  uint16
	}{
		{"discovery 1Hz", 8_000_000, 1, 122, 65040},
		{"discovery 2Hz", 8_000_000, 2, 61, 64516},
		{"pico 1Hz", 125_000_000, 1, 1907, 65513},
		{"no prescale", 65535, 1, 0, 65535},
		{"first prescale", 65536, 1, 1, 32768},
		{"ratio one", 1000, 1000, 0, 1},
		{"largest ratio", 65535 * 65536, 1, 65535, 65535},
	}

	for _, tc := range testCases {
		cfg, err := ComputeTimerConfig(tc.bus, tc.target)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if cfg.Divisor != tc.divisor || cfg.Reload != tc.reload {
			t.Errorf("%s: got divisor=%d reload=%d, want divisor=%d reload=%d",
				tc.name, cfg.Divisor, cfg.Reload, tc.divisor, tc.reload)
		}
	}
}

func TestComputeTimerConfigOutOfRange(t *testing.T) {
	testCases := []struct {
		name   string
		bus    uint64
		target uint64
		field  string
	}{
		{"just past largest", 65535*65536 + 1, 1, "divisor"},
		{"65536 squared", 65536 * 65536, 1, "divisor"},
		{"far past", 1 << 40, 1, "divisor"},
		{"target above bus", 1000, 2000, "ratio"},
	}

	for _, tc := range testCases {
		_, err := ComputeTimerConfig(tc.bus, tc.target)
		if !errors.Is(err, ErrConfigOutOfRange) {
			t.Errorf("%s: expected ErrConfigOutOfRange, got %v", tc.name, err)
			continue
		}
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("%s: expected *RangeError, got %T", tc.name, err)
			continue
		}
		if rangeErr.Field != tc.field {
			t.Errorf("%s: expected field %q, got %q", tc.name, tc.field, rangeErr.Field)
		}
		t.Logf("%s: %v", tc.name, err)
	}
}

func TestComputeTimerConfigZero(t *testing.T) {
	if _, err := ComputeTimerConfig(0, 1); err != ErrZeroFrequency {
		t.Errorf("zero bus: expected ErrZeroFrequency, got %v", err)
	}
	if _, err := ComputeTimerConfig(8_000_000, 0); err != ErrZeroFrequency {
		t.Errorf("zero target: expected ErrZeroFrequency, got %v", err)
	}
}

func TestTimerConfigRangeInvariant(t *testing.T) {
	// Sweep ratios across the whole representable range
	for ratio := uint64(1); ratio <= 65535*65536; ratio = ratio*3 + 7 {
		cfg, err := ComputeTimerConfig(ratio, 1)
		if err != nil {
			t.Fatalf("ratio %d: unexpected error: %v", ratio, err)
		}

		// Effective period is never short and at most one reload tick long
		bias := cfg.Bias(ratio, 1)
		if bias <= 0 || bias > int64(cfg.Divisor)+1 {
			t.Errorf("ratio %d: bias %d outside (0, %d]", ratio, bias, int64(cfg.Divisor)+1)
		}
	}
}

func TestTimerConfigPeriod(t *testing.T) {
	cfg, err := ComputeTimerConfig(8_000_000, 1)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Ticks() != 123*65041 {
		t.Errorf("Ticks() = %d, want %d", cfg.Ticks(), 123*65041)
	}

	period := cfg.Period(8_000_000)
	if period < time.Second || period > time.Second+10*time.Microsecond {
		t.Errorf("Period() = %v, want just over 1s", period)
	}

	if bias := cfg.Bias(8_000_000, 1); bias != 43 {
		t.Errorf("Bias() = %d, want 43", bias)
	}

	if s := cfg.String(); s != "divisor=122 reload=65040" {
		t.Errorf("String() = %q", s)
	}
}

func TestProgramTimer(t *testing.T) {
	timer := &fakeTimer{}

	cfg, err := ProgramTimer(timer, 8_000_000, 1)
	if err != nil {
		t.Fatalf("ProgramTimer failed: %v", err)
	}
	if len(timer.programmed) != 1 || timer.programmed[0] != cfg {
		t.Errorf("expected one Program(%v), got %v", cfg, timer.programmed)
	}
	if !timer.started {
		t.Error("counter was not started")
	}
}

func TestProgramTimerOutOfRangeLeavesTimerUntouched(t *testing.T) {
	timer := &fakeTimer{}

	_, err := ProgramTimer(timer, 1<<40, 1)
	if !errors.Is(err, ErrConfigOutOfRange) {
		t.Fatalf("expected ErrConfigOutOfRange, got %v", err)
	}
	if len(timer.programmed) != 0 {
		t.Error("timer was programmed despite invalid configuration")
	}
	if timer.started {
		t.Error("counter was started despite invalid configuration")
	}
}

func TestCountdownPreload(t *testing.T) {
	testCases := []struct {
		reload   uint16
		overhead uint32
		want     uint32
		wantErr  bool
	}{
		{65513, 2, 65511, false},
		{2, 2, 0, false},
		{1, 2, 0, true},
		{0, 0, 0, false},
	}

	for _, tc := range testCases {
		got, err := CountdownPreload(TimerConfig{Reload: tc.reload}, tc.overhead)
		if tc.wantErr {
			if !errors.Is(err, ErrConfigOutOfRange) {
				t.Errorf("reload=%d overhead=%d: expected ErrConfigOutOfRange, got %v", tc.reload, tc.overhead, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("reload=%d overhead=%d: got %d, %v; want %d", tc.reload, tc.overhead, got, err, tc.want)
		}

		// preload+1 loop cycles plus overhead is one full period
		if got+1+tc.overhead != uint32(tc.reload)+1 {
			t.Errorf("reload=%d: period mismatch", tc.reload)
		}
	}
}

func TestBasicTimer(t *testing.T) {
	var cr1, sr, egr, psc, arr fakeRegister
	cr1.value = TIM_CR1_OPM
	timer := &BasicTimer{CR1: &cr1, SR: &sr, EGR: &egr, PSC: &psc, ARR: &arr}

	if err := timer.Program(TimerConfig{Divisor: 122, Reload: 65040}); err != nil {
		t.Fatal(err)
	}
	if psc.value != 122 || arr.value != 65040 {
		t.Errorf("PSC=%d ARR=%d, want 122 and 65040", psc.value, arr.value)
	}
	if cr1.value&TIM_CR1_OPM != 0 {
		t.Error("one-pulse mode still selected")
	}
	if cr1.value&TIM_CR1_CEN != 0 {
		t.Error("counter enabled by Program")
	}
	if len(egr.writes) != 1 || egr.writes[0] != TIM_EGR_UG {
		t.Errorf("expected a single UG write, got %v", egr.writes)
	}

	timer.Start()
	if cr1.value&TIM_CR1_CEN == 0 {
		t.Error("counter not enabled by Start")
	}

	sr.value = TIM_SR_UIF
	if !timer.Overflowed() {
		t.Error("Overflowed() = false with UIF set")
	}

	writes := len(sr.writes)
	timer.ClearOverflow()
	if len(sr.writes) != writes+1 {
		t.Error("ClearOverflow must be exactly one register write")
	}
	if sr.writes[len(sr.writes)-1]&TIM_SR_UIF != 0 {
		t.Error("ClearOverflow must write 0 to UIF")
	}
}
