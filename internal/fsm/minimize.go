package fsm

// Minimize returns the minimal complete DFA for f's language using
// Hopcroft's partition refinement.
func (f *FSM) Minimize() *FSM {
	f = f.Reduce()
	n := len(f.trans)
	nsym := f.alphabet.Len()

	// inv[sym][t] lists the states moving to t on sym.
	inv := make([][][]int, nsym)
	for sym := range inv {
		inv[sym] = make([][]int, n)
	}
	for s, row := range f.trans {
		for sym, t := range row {
			inv[sym][t] = append(inv[sym][t], s)
		}
	}

	// --- initial partition: finals / the rest ---
	block := make([]int, n)
	var blocks [][]int
	var acc, non []int
	for s := 0; s < n; s++ {
		if f.IsFinal(s) {
			acc = append(acc, s)
		} else {
			non = append(non, s)
		}
	}
	for _, b := range [][]int{acc, non} {
		if len(b) == 0 {
			continue
		}
		for _, s := range b {
			block[s] = len(blocks)
		}
		blocks = append(blocks, b)
	}
	work := make([]int, len(blocks))
	inWork := make([]bool, len(blocks))
	for i := range work {
		work[i] = i
		inWork[i] = true
	}

	// --- refinement ---
	mark := make([]bool, n)
	for len(work) > 0 {
		a := work[len(work)-1]
		work = work[:len(work)-1]
		inWork[a] = false
		splitter := append([]int(nil), blocks[a]...)

		for sym := 0; sym < nsym; sym++ {
			var pre []int
			for _, t := range splitter {
				for _, s := range inv[sym][t] {
					if !mark[s] {
						mark[s] = true
						pre = append(pre, s)
					}
				}
			}
			touched := map[int]bool{}
			for _, s := range pre {
				touched[block[s]] = true
			}
			for y := range touched {
				var inter, diff []int
				for _, s := range blocks[y] {
					if mark[s] {
						inter = append(inter, s)
					} else {
						diff = append(diff, s)
					}
				}
				if len(diff) == 0 {
					continue
				}
				blocks[y] = inter
				nb := len(blocks)
				blocks = append(blocks, diff)
				inWork = append(inWork, false)
				for _, s := range diff {
					block[s] = nb
				}
				// Hopcroft: a block already queued is replaced by both halves,
				// otherwise only the smaller half needs to be queued.
				switch {
				case inWork[y]:
					work = append(work, nb)
					inWork[nb] = true
				case len(inter) <= len(diff):
					work = append(work, y)
					inWork[y] = true
				default:
					work = append(work, nb)
					inWork[nb] = true
				}
			}
			for _, s := range pre {
				mark[s] = false
			}
		}
	}

	// --- quotient machine ---
	out := &FSM{alphabet: f.alphabet, initial: block[f.initial], trans: make([][]int, len(blocks))}
	var finals []int
	for b, members := range blocks {
		rep := members[0]
		if f.IsFinal(rep) {
			finals = append(finals, b)
		}
		row := make([]int, nsym)
		for sym, t := range f.trans[rep] {
			row[sym] = block[t]
		}
		out.trans[b] = row
	}
	out.final = finalSet(len(blocks), finals)
	return out.Reduce()
}
