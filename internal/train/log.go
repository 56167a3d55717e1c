package train

import (
	"fmt"
	"io"
	"os"
)

// LogFunc receives progress every Config.LogEvery epochs and after the final
// epoch. losses holds the total loss of every epoch so far, the last entry
// being totalLoss.
type LogFunc func(epoch int, totalLoss float64, correct int, losses []float64)

// DefaultLogFunc prints one line per call to standard output.
func DefaultLogFunc(epoch int, totalLoss float64, correct int, losses []float64) {
	WriterLogFunc(os.Stdout)(epoch, totalLoss, correct, losses)
}

// WriterLogFunc returns a LogFunc printing to w in the DefaultLogFunc format:
//
//	Epoch  10  loss  21.37 correct 41
func WriterLogFunc(w io.Writer) LogFunc {
	return func(epoch int, totalLoss float64, correct int, _ []float64) {
		fmt.Fprintln(w, "Epoch ", epoch, " loss ", totalLoss, "correct", correct)
	}
}
