package game

// mockRandom replays a fixed sequence of Intn results and never reorders on Shuffle,
// so tests can predict exactly which tile grows and which card is on top.
type mockRandom struct {
	ints []int
	next int
}

func (m *mockRandom) Intn(n int) int {
	if m.next >= len(m.ints) {
		return 0
	}
	v := m.ints[m.next] % n
	m.next++
	return v
}

func (m *mockRandom) Shuffle(n int, swap func(i, j int)) {}
