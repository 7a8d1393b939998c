package dfg

// ebbData is the "EBB payload" spec §3 describes: one value list holding
// the EBB's arguments in positional order.
type ebbData struct {
	args ValueList
}
