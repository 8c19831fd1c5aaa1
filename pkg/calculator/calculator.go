package calculator

import (
	"math"

	"github.com/aretw0/tempera/pkg/domain"
)

// Calculate runs the model selected by p.Mode.
func Calculate(p domain.InputParameters) domain.MixResult {
	if p.Mode == domain.ModeIce {
		return Ice(p)
	}
	return Water(p)
}

// Water mixes hot liquid with cold water.
//
//	m_hot = total * ΔT_cold / (ΔT_hot + ΔT_cold)
func Water(p domain.InputParameters) domain.MixResult {
	res := domain.MixResult{Mode: domain.ModeWater}

	deltaHot := p.Hot - p.Target
	deltaCold := p.Target - p.ColdWater
	denominator := deltaHot + deltaCold

	if denominator != 0 {
		res.HotMass = p.Total * deltaCold / denominator
		res.CoolantMass = p.Total - res.HotMass
	} else {
		res.Degenerate = true
	}
	res.TotalMass = res.HotMass + res.CoolantMass

	res.Trace.Add("1. Temperature differences",
		domain.Highlight("ΔT_hot = "+Number(p.Hot)+" - "+Number(p.Target)+" = ", Fixed(deltaHot, 1)+" K"),
		domain.Highlight("ΔT_cold = "+Number(p.Target)+" - "+Number(p.ColdWater)+" = ", Fixed(deltaCold, 1)+" K"),
	)
	res.Trace.Add("2. Mix",
		domain.Text("Formula: m_total * ΔT_cold / (ΔT_hot + ΔT_cold)"),
		domain.Text("m_hot = "+Number(p.Total)+" * "+Fixed(deltaCold, 1)+" / "+Fixed(denominator, 1)),
		domain.Highlight("m_hot = ", Fixed(res.HotMass, 1)+" g"),
	)

	return res
}

// Ice mixes hot liquid with ice that starts at p.IceStart.
// Per gram, the hot liquid releases Cw*(hot-target) while the ice absorbs the energy
// to reach 0°C, to melt, and to warm up to the target.
func Ice(p domain.InputParameters) domain.MixResult {
	res := domain.MixResult{Mode: domain.ModeIce}

	energyLost := EnergyReleasedPerGram(p.Hot, p.Target)
	warmIce, melt, warmWater := EnergyAbsorbedPerGram(p.IceStart, p.Target)
	energyGained := warmIce + melt + warmWater
	denominator := energyGained + energyLost

	if denominator != 0 {
		iceMass := p.Total * energyLost / denominator
		res.HotMass = p.Total - iceMass
		res.CoolantMass = iceMass
	} else {
		res.Degenerate = true
	}
	res.TotalMass = res.HotMass + res.CoolantMass

	res.Trace.Add("1. Energy balance hot liquid (released)",
		domain.Text("Per gram: "+Number(domain.SpecificHeatWater)+" * ("+Number(p.Hot)+" - "+Number(p.Target)+")"),
		domain.Highlight("= ", Fixed(energyLost, 1)+" J/g"),
	)
	res.Trace.Add("2. Energy balance ice (absorbed)",
		domain.Text("a) Warm up: "+Fixed(warmIce, 1)+" J"),
		domain.Strong("b) Melt: ", Number(melt)+" J"),
		domain.Text("c) Warm to target: "+Fixed(warmWater, 1)+" J"),
		domain.Highlight("Sum: ", Fixed(energyGained, 1)+" J/g"),
	)

	ratio := 0.0
	if energyLost > 0 {
		ratio = energyLost / energyGained
	}
	res.Trace.Add("3. Result",
		domain.Text("Ratio hot:ice ≈ "+Fixed(ratio, 2)+":1"),
		domain.Highlight("Ice mass: ", Fixed(res.CoolantMass, 1)+" g"),
	)

	return res
}

// EnergyReleasedPerGram is the energy one gram of hot liquid gives off while cooling to target, in J/g.
func EnergyReleasedPerGram(hot, target float64) float64 {
	return float64(domain.SpecificHeatWater * (hot - target))
}

// EnergyAbsorbedPerGram splits the energy one gram of ice takes up into its three phases, in J/g:
// warming the ice to the melting point, melting it, and warming the melt water to target.
func EnergyAbsorbedPerGram(iceStart, target float64) (warmIce, melt, warmWater float64) {
	warmIce = float64(domain.SpecificHeatIce * math.Abs(iceStart-domain.MeltingPoint))
	melt = domain.LatentHeatFusion
	warmWater = float64(domain.SpecificHeatWater * (target - domain.MeltingPoint))
	return warmIce, melt, warmWater
}
