package sim

// RCC enable bits used by the firmware
const (
	RCC_AHB1ENR_GPIOGEN = 1 << 6
	RCC_APB1ENR_TIM7EN  = 1 << 5
)

// RCC models the clock-enable registers of the reset and clock controller
type RCC struct {
	AHB1ENR *Reg
	APB1ENR *Reg
}

func newRCC() *RCC {
	return &RCC{
		AHB1ENR: newReg("RCC_AHB1ENR", nil),
		APB1ENR: newReg("RCC_APB1ENR", nil),
	}
}

// GPIOGEnabled reports whether the GPIOG bank is clocked
func (r *RCC) GPIOGEnabled() bool {
	return r.AHB1ENR.value&RCC_AHB1ENR_GPIOGEN != 0
}

// TIM7Enabled reports whether TIM7 is clocked
func (r *RCC) TIM7Enabled() bool {
	return r.APB1ENR.value&RCC_APB1ENR_TIM7EN != 0
}
