package wizard

// maxSyntheticProgress caps the synthetic estimate until the terminal
// receipt arrives, to avoid implying completion the chain has not
// confirmed.
const maxSyntheticProgress = 99

// progressMessages maps progress thresholds to status text, ordered by
// threshold ascending. The message shown is the one with the highest
// threshold not exceeding the current progress.
var progressMessages = []struct {
	threshold int
	text      string
}{
	{0, "Submitting transaction to the network..."},
	{15, "Waiting for the transaction to be mined..."},
	{50, "Transaction accepted, awaiting confirmation..."},
	{95, "Finalizing deployment..."},
}

// StatusMessage derives the textual status for a progress value.
func StatusMessage(progress int) string {
	text := progressMessages[0].text
	for _, m := range progressMessages {
		if m.threshold <= progress {
			text = m.text
		}
	}
	return text
}
