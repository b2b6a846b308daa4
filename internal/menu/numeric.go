package menu

import "fmt"

// FormatValueFunc converts a numeric value into display text. Implementations
// must be pure.
type FormatValueFunc func(value float64) string

// NumericItem is a leaf entry carrying a bounded floating point value. Next
// and Prev step the value by the configured increment instead of moving a
// cursor; the value always stays within [min, max].
type NumericItem struct {
	Item
	value     float64
	minValue  float64
	maxValue  float64
	increment float64
	formatFn  FormatValueFunc
}

// NewNumericItem constructs a numeric entry. A range where minValue exceeds
// maxValue is rejected outright; an initial value outside the range is
// clamped onto it. formatFn may be nil, in which case FormatValue is used.
func NewNumericItem(name, icon string, fn SelectFunc, value, minValue, maxValue, increment float64, formatFn FormatValueFunc) (*NumericItem, error) {
	if minValue > maxValue {
		return nil, fmt.Errorf("numeric item %q: min %v exceeds max %v", name, minValue, maxValue)
	}
	it := &NumericItem{
		Item:      Item{base: base{name: name, icon: icon, selectFn: fn}},
		minValue:  minValue,
		maxValue:  maxValue,
		increment: increment,
		formatFn:  formatFn,
	}
	it.value = it.clamp(value)
	return it, nil
}

func (it *NumericItem) Value() float64     { return it.value }
func (it *NumericItem) MinValue() float64  { return it.minValue }
func (it *NumericItem) MaxValue() float64  { return it.maxValue }
func (it *NumericItem) Increment() float64 { return it.increment }

// SetValue stores the value, clamped onto the item's range.
func (it *NumericItem) SetValue(value float64) {
	it.value = it.clamp(value)
}

// SetMinValue moves the lower bound and re-clamps the value. Callers keep
// min <= max.
func (it *NumericItem) SetMinValue(value float64) {
	it.minValue = value
	it.value = it.clamp(it.value)
}

// SetMaxValue moves the upper bound and re-clamps the value. Callers keep
// min <= max.
func (it *NumericItem) SetMaxValue(value float64) {
	it.maxValue = value
	it.value = it.clamp(it.value)
}

// SetFormatFunc replaces the value formatter.
func (it *NumericItem) SetFormatFunc(fn FormatValueFunc) { it.formatFn = fn }

// FormattedValue returns the value as display text.
func (it *NumericItem) FormattedValue() string {
	if it.formatFn != nil {
		return it.formatFn(it.value)
	}
	return FormatValue(it.value)
}

// Next raises the value by one increment. Past the upper bound the value
// clamps there, or wraps to the lower bound when loop is set. Reports whether
// the value changed.
func (it *NumericItem) Next(loop bool) bool {
	prev := it.value
	it.value += it.increment
	if it.value > it.maxValue {
		if loop {
			it.value = it.minValue
		} else {
			it.value = it.maxValue
		}
	}
	return it.value != prev
}

// Prev lowers the value by one increment, the mirror of Next.
func (it *NumericItem) Prev(loop bool) bool {
	prev := it.value
	it.value -= it.increment
	if it.value < it.minValue {
		if loop {
			it.value = it.maxValue
		} else {
			it.value = it.minValue
		}
	}
	return it.value != prev
}

// Select invokes the callback only; the value moves through Next and Prev.
func (it *NumericItem) Select() *Menu {
	it.invoke(it)
	return nil
}

func (it *NumericItem) Render(r Renderer) { r.RenderNumericItem(it) }

func (it *NumericItem) clamp(value float64) float64 {
	if value < it.minValue {
		return it.minValue
	}
	if value > it.maxValue {
		return it.maxValue
	}
	return value
}
