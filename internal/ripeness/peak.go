package ripeness

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRangeStage возвращается для стадии меньше 1
var ErrOutOfRangeStage = errors.New("stage out of range")

// DaysUntilPeak оценивает количество дней до пика спелости (стадия 6).
//
// Для каждой стадии от текущей до пика берется среднее арифметическое
// диапазона длительности, суммы округляются банковским округлением
// (к ближайшему четному), поэтому для стадии 1 сумма 10.5 дает 10.
// Стадии 6 и выше уже на пике или за ним и дают 0.
func DaysUntilPeak(stage int) (int, error) {
	if stage < MinStage {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRangeStage, stage)
	}

	if stage >= PeakStage {
		return 0, nil
	}

	total := 0.0
	for s := stage; s < PeakStage; s++ {
		md := stageMetadata[s]
		total += float64(md.MinDays+md.MaxDays) / 2
	}

	return int(math.RoundToEven(total)), nil
}
