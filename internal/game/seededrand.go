package game

// Stateless randomness for ambient agents. Every client computes the
// same value from the same (id, cycle, index) triple, which is what
// keeps wander targets identical across machines with no traffic.

// SeededRandom maps a seed to a reproducible value in [0,1).
// Pure integer mixing; bit-identical on every platform.
func SeededRandom(seed int64) float64 {
	return float64(splitmix64(uint64(seed))>>11) * (1.0 / (1 << 53))
}

// HashAgentID folds an agent id into a stable 32-bit hash
// (31-polynomial over the raw bytes, wrapping).
func HashAgentID(id string) int32 {
	var h int32
	for i := 0; i < len(id); i++ {
		h = h*31 + int32(id[i])
	}
	return h
}

// AgentRandom derives the agent's deterministic stream. cycle is the
// behavior-cycle counter, index distinguishes draws within one cycle.
func AgentRandom(id string, cycle, index int) float64 {
	seed := int64(HashAgentID(id)) + int64(cycle)*1000 + int64(index)*100
	return SeededRandom(seed)
}
