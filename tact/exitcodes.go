package tact

// StandardExitCodes are the exit codes every compiled contract may raise.
var StandardExitCodes = map[int]string{
	2:   "Stack undeflow",
	3:   "Stack overflow",
	4:   "Integer overflow",
	5:   "Integer out of expected range",
	6:   "Invalid opcode",
	7:   "Type check error",
	8:   "Cell overflow",
	9:   "Cell underflow",
	10:  "Dictionary error",
	13:  "Out of gas error",
	32:  "Method ID not found",
	34:  "Action is invalid or not supported",
	37:  "Not enough TON",
	38:  "Not enough extra-currencies",
	128: "Null reference exception",
	129: "Invalid serialization prefix",
	130: "Invalid incoming message",
	131: "Constraints error",
	132: "Access denied",
	133: "Contract stopped",
	134: "Invalid argument",
	135: "Code of a contract was not found",
	136: "Invalid address",
}

// ExitCodes returns the standard table extended with contract-specific
// codes. Entries in extra win.
func ExitCodes(extra map[int]string) map[int]string {
	out := make(map[int]string, len(StandardExitCodes)+len(extra))
	for k, v := range StandardExitCodes {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
