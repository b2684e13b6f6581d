package listener

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/inlined/evolve/genome"
	"github.com/inlined/evolve/limit"
)

const reportTemplate = `Initialization time: {{.InitMS}}ms

Evaluation Times:
  avg: {{.EvalAvgMS}}ms
  max: {{.EvalMaxMS}}ms
  min: {{.EvalMinMS}}ms

Selection Times:
  offspring (parents) avg: {{.ParentSelAvgMS}}ms
  survivors avg: {{.SurvivorSelAvgMS}}ms

Alteration Times:
  avg: {{.AlterAvgMS}}ms

Evolution Results:
  total time: {{.TotalMS}}ms
  per-generation time: {{.PerGenMS}}ms
  generations: {{.Generations}}
  steady generations: {{.Steady}}
  fittest individual: {{.BestGenotype}}
  best fitness: {{.BestFitness}}
`

var reportTpl = template.Must(template.New("evolve-text-report").Parse(reportTemplate))

// TextReport accumulates per-phase timings across a full evolution run and
// renders them into the labeled-section text report, the only place the
// core touches presentation.
type TextReport struct {
	Steady *limit.SteadyGenerations // optional: read for the "steady generations" line

	evolutionStart time.Time
	evolutionTime  time.Duration

	initStart time.Time
	initTime  time.Duration

	evalStart time.Time
	evalTimes []time.Duration

	parentSelStart time.Time
	parentSelTimes []time.Duration

	survivorSelStart time.Time
	survivorSelTimes []time.Duration

	alterStart time.Time
	alterTimes []time.Duration

	generationStart time.Time
	generationTimes []time.Duration

	generations uint64
	best        genome.Individual
	haveBest    bool
}

// NewTextReport constructs an empty TextReport. steady may be nil if no
// SteadyGenerations limit is configured.
func NewTextReport(steady *limit.SteadyGenerations) *TextReport {
	return &TextReport{Steady: steady}
}

func (t *TextReport) OnEvolutionStarted(genome.EvolutionState) error {
	t.evolutionStart = time.Now()
	return nil
}

func (t *TextReport) OnEvolutionEnded(state genome.EvolutionState) error {
	t.evolutionTime = time.Since(t.evolutionStart)
	t.noteBest(state)
	return nil
}

func (t *TextReport) OnInitializationStarted(genome.EvolutionState) error {
	t.initStart = time.Now()
	return nil
}

func (t *TextReport) OnInitializationEnded(genome.EvolutionState) error {
	t.initTime = time.Since(t.initStart)
	return nil
}

func (t *TextReport) OnGenerationStarted(genome.EvolutionState) error {
	t.generationStart = time.Now()
	t.generations++
	return nil
}

func (t *TextReport) OnGenerationEnded(state genome.EvolutionState) error {
	t.generationTimes = append(t.generationTimes, time.Since(t.generationStart))
	t.noteBest(state)
	return nil
}

func (t *TextReport) OnEvaluationStarted(genome.EvolutionState) error {
	t.evalStart = time.Now()
	return nil
}

func (t *TextReport) OnEvaluationEnded(genome.EvolutionState) error {
	t.evalTimes = append(t.evalTimes, time.Since(t.evalStart))
	return nil
}

func (t *TextReport) OnParentSelectionStarted(genome.EvolutionState) error {
	t.parentSelStart = time.Now()
	return nil
}

func (t *TextReport) OnParentSelectionEnded(genome.EvolutionState) error {
	t.parentSelTimes = append(t.parentSelTimes, time.Since(t.parentSelStart))
	return nil
}

func (t *TextReport) OnSurvivorSelectionStarted(genome.EvolutionState) error {
	t.survivorSelStart = time.Now()
	return nil
}

func (t *TextReport) OnSurvivorSelectionEnded(genome.EvolutionState) error {
	t.survivorSelTimes = append(t.survivorSelTimes, time.Since(t.survivorSelStart))
	return nil
}

func (t *TextReport) OnAlterationStarted(genome.EvolutionState) error {
	t.alterStart = time.Now()
	return nil
}

func (t *TextReport) OnAlterationEnded(genome.EvolutionState) error {
	t.alterTimes = append(t.alterTimes, time.Since(t.alterStart))
	return nil
}

func (t *TextReport) noteBest(state genome.EvolutionState) {
	idx := state.BestIndex()
	if idx == -1 {
		return
	}
	candidate := state.Population[idx]
	if !t.haveBest || state.Ranker.Less(candidate.Fitness.Value(), t.best.Fitness.Value()) {
		t.best = candidate
		t.haveBest = true
	}
}

type reportData struct {
	InitMS           float64
	EvalAvgMS        float64
	EvalMaxMS        float64
	EvalMinMS        float64
	ParentSelAvgMS   float64
	SurvivorSelAvgMS float64
	AlterAvgMS       float64
	TotalMS          float64
	PerGenMS         float64
	Generations      uint64
	Steady           uint64
	BestGenotype     string
	BestFitness      float64
}

// String renders the accumulated timings as the labeled-section text
// report. It never errors: the template is static and validated at init.
func (t *TextReport) String() string {
	evalAvg, evalMax, evalMin := stats(t.evalTimes)
	parentAvg, _, _ := stats(t.parentSelTimes)
	survivorAvg, _, _ := stats(t.survivorSelTimes)
	alterAvg, _, _ := stats(t.alterTimes)

	perGen := 0.0
	if t.generations > 0 {
		perGen = msf(t.evolutionTime) / float64(t.generations)
	}

	var steady uint64
	if t.Steady != nil {
		steady = t.Steady.Steady()
	}

	data := reportData{
		InitMS:           msf(t.initTime),
		EvalAvgMS:        evalAvg,
		EvalMaxMS:        evalMax,
		EvalMinMS:        evalMin,
		ParentSelAvgMS:   parentAvg,
		SurvivorSelAvgMS: survivorAvg,
		AlterAvgMS:       alterAvg,
		TotalMS:          msf(t.evolutionTime),
		PerGenMS:         perGen,
		Generations:      t.generations,
		Steady:           steady,
		BestGenotype:     t.best.Genotype.String(),
		BestFitness:      t.best.Fitness.Value(),
	}

	var b strings.Builder
	if err := reportTpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("evolve: text report render error: %v", err)
	}
	return b.String()
}

func msf(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

func stats(ds []time.Duration) (avg, max, min float64) {
	if len(ds) == 0 {
		return 0, 0, 0
	}
	var sum time.Duration
	max = msf(ds[0])
	min = msf(ds[0])
	for _, d := range ds {
		sum += d
		if msf(d) > max {
			max = msf(d)
		}
		if msf(d) < min {
			min = msf(d)
		}
	}
	avg = msf(sum) / float64(len(ds))
	return avg, max, min
}
