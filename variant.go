package main

// Variant is the hardware component a flying item turns into after it passes
// through the portal. It is picked at spawn time and never changes: an item
// is never two different components during its life.
type Variant int64

const (
	VariantGpu Variant = iota
	VariantRam
	VariantCpu
	VariantMotherboard
	NVariants
)

func (v Variant) String() string {
	switch v {
	case VariantGpu:
		return "gpu"
	case VariantRam:
		return "ram"
	case VariantCpu:
		return "cpu"
	case VariantMotherboard:
		return "motherboard"
	default:
		return "unknown"
	}
}
