// Package optimizer orchestrates the classifier, scorer, and the rule
// registry's style and platform transforms into one deterministic
// multi-pass prompt rewrite.
package optimizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/promptsmith/promptsmith/internal/classifier"
	apperrors "github.com/promptsmith/promptsmith/internal/errors"
	"github.com/promptsmith/promptsmith/internal/ledger"
	"github.com/promptsmith/promptsmith/internal/platform"
	"github.com/promptsmith/promptsmith/internal/promptdoc"
	"github.com/promptsmith/promptsmith/internal/rules"
	"github.com/promptsmith/promptsmith/internal/scorer"
)

// DefaultMaxInputLength is the hard cap on input prompt length. Longer
// input is truncated at a sentence boundary before optimization rather
// than rejected.
const DefaultMaxInputLength = 5000

// dimThreshold is the per-dimension score below which the corresponding
// guidance pass fires. Tunable; shared by all four gates.
const dimThreshold = 70

// Request carries the caller's optional targeting choices.
type Request struct {
	// Platform is the destination chat platform id; empty means
	// auto-detect, falling back to the engine default.
	Platform string

	// Style is the target writing style id; empty means use the
	// classifier's suggestion, falling back to the engine default.
	Style string
}

// Scores summarizes the before/after quality delta.
type Scores struct {
	Original    int    `json:"original"`
	Optimized   int    `json:"optimized"`
	Improvement int    `json:"improvement"`
	Grade       string `json:"grade"`
}

// Metadata carries bookkeeping about one optimization run.
type Metadata struct {
	ProcessingMs    int64     `json:"processing_ms"`
	Timestamp       time.Time `json:"timestamp"`
	WordCountChange int       `json:"word_count_change"`
	LengthChange    int       `json:"length_change"`
}

// Result is the immutable outcome of one optimization.
type Result struct {
	ID           string         `json:"id"`
	Original     string         `json:"original"`
	Optimized    string         `json:"optimized"`
	Style        string         `json:"style"`
	Platform     string         `json:"platform"`
	TaskType     string         `json:"task_type"`
	ExpertRole   string         `json:"expert_role,omitempty"`
	Scores       Scores         `json:"scores"`
	Confidence   float64        `json:"confidence"`
	Improvements []string       `json:"improvements"`
	TimeSaved    float64        `json:"time_saved"`
	Metadata     Metadata       `json:"metadata"`
	Quality      scorer.Quality `json:"quality"`
}

// Config wires the engine's collaborators. All state is passed in
// explicitly; the engine holds no globals.
type Config struct {
	Registry   *rules.Registry
	Classifier classifier.Classifier
	Ledger     *ledger.Ledger
	Detector   platform.Detector
	Logger     *slog.Logger

	DefaultStyle    string
	DefaultPlatform string
	MaxInputLength  int
}

// Engine runs the optimization pipeline.
type Engine struct {
	reg      *rules.Registry
	scorer   *scorer.Scorer
	class    classifier.Classifier
	ledger   *ledger.Ledger
	detector platform.Detector
	log      *slog.Logger

	defaultStyle    string
	defaultPlatform string
	maxInput        int
}

// NewEngine creates an engine from cfg, filling in defaults for any
// collaborator left nil.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		reg:             cfg.Registry,
		scorer:          scorer.New(cfg.Registry),
		class:           cfg.Classifier,
		ledger:          cfg.Ledger,
		detector:        cfg.Detector,
		log:             cfg.Logger,
		defaultStyle:    cfg.DefaultStyle,
		defaultPlatform: cfg.DefaultPlatform,
		maxInput:        cfg.MaxInputLength,
	}

	if e.class == nil {
		e.class = classifier.New(cfg.Registry)
	}
	if e.detector == nil {
		e.detector = platform.None{}
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if e.defaultStyle == "" {
		e.defaultStyle = rules.DefaultStyle
	}
	if e.defaultPlatform == "" {
		e.defaultPlatform = rules.DefaultPlatform
	}
	if e.maxInput <= 0 {
		e.maxInput = DefaultMaxInputLength
	}

	return e
}

// Optimize rewrites text for the requested platform and style and
// reports the quality delta. The only side effect is the analytics
// record at the end, and a failure there is logged, never returned:
// the rewrite must not be lost because persistence failed.
func (e *Engine) Optimize(ctx context.Context, text string, req Request) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.InvalidInput("text is empty or whitespace-only")
	}
	if !utf8.ValidString(text) {
		return nil, apperrors.InvalidInput("text is not valid UTF-8")
	}

	started := time.Now()

	result, err := e.run(text, req)
	if err != nil {
		return nil, err
	}
	result.Metadata.ProcessingMs = time.Since(started).Milliseconds()

	if e.ledger != nil {
		entry := ledger.Entry{
			Style:       result.Style,
			Platform:    result.Platform,
			Improvement: float64(result.Scores.Improvement),
			TimeSaved:   result.TimeSaved,
		}
		if err := e.ledger.Record(ctx, entry); err != nil {
			e.log.Warn("analytics record failed", "error", err)
		}
	}

	return result, nil
}

// run executes pipeline steps 2-8. Any panic inside the stages is
// converted into a single OptimizationFailed error so callers see one
// error taxonomy regardless of which internal stage blew up.
func (e *Engine) run(text string, req Request) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = apperrors.OptimizationFailed(fmt.Errorf("panic in pipeline stage: %v", r))
		}
	}()

	working := capInput(text, e.maxInput)
	if working != text {
		e.log.Warn("input exceeds cap, truncated", "cap", e.maxInput, "length", len(text))
	}

	// Stage 1: resolve platform and style, fail-soft.
	platformID := req.Platform
	if platformID == "" {
		if info, ok := e.detector.DetectCurrentPlatform(); ok {
			platformID = info.ID
		} else {
			platformID = e.defaultPlatform
		}
	}
	platformRules, known := e.reg.PlatformRules(platformID)
	if !known {
		e.log.Warn("unknown platform, using default rules", "platform", platformID)
		platformID = platformRules.ID
	}

	detection, detected := e.class.DetectTask(working)
	taskType := classifier.TaskGeneral
	if detected {
		taskType = detection.Task
	}

	styleID := req.Style
	if styleID == "" {
		if detected && len(detection.SuggestedStyles) > 0 {
			styleID = detection.SuggestedStyles[0]
		} else {
			styleID = e.defaultStyle
		}
	}
	styleRules, known := e.reg.StyleRules(styleID)
	if !known {
		e.log.Warn("unknown style, using default rules", "style", styleID)
		styleID = styleRules.ID
	}

	// Stage 2: score the original.
	originalScore := e.scorer.Score(working, styleID, platformID)

	// Stage 3: expert role, style override first.
	role, hasRole := e.class.ExpertRole(taskType, styleID)

	// Stages 4-6: core, style, and platform passes. Append-only and
	// marker-gated, so a second run over the output is a no-op.
	optimized := e.corePass(working, originalScore, role, hasRole)
	optimized = applyGuidance(optimized, styleRules.Guidance)
	optimized = applyGuidance(optimized, platformRules.Guidance)

	// Stage 7: length enforcement. The only destructive step, always last.
	optimized = enforceLength(optimized, platformRules.MaxOptimalLength)

	// Stage 8: rescore and explain.
	optimizedScore := e.scorer.Score(optimized, styleID, platformID)
	improvement := optimizedScore.Overall - originalScore.Overall
	platformTuned := platformID != rules.DefaultPlatform

	result = &Result{
		ID:        uuid.NewString(),
		Original:  text,
		Optimized: optimized,
		Style:     styleID,
		Platform:  platformID,
		TaskType:  string(taskType),
		Scores: Scores{
			Original:    originalScore.Overall,
			Optimized:   optimizedScore.Overall,
			Improvement: improvement,
			Grade:       optimizedScore.Grade,
		},
		Confidence:   scorer.Confidence(working, optimized),
		Improvements: scorer.Improvements(working, optimized),
		TimeSaved:    scorer.TimeSaved(float64(improvement), platformTuned),
		Metadata: Metadata{
			Timestamp:       time.Now().UTC(),
			WordCountChange: promptdoc.WordCount(optimized) - promptdoc.WordCount(text),
			LengthChange:    len(optimized) - len(text),
		},
		Quality: optimizedScore,
	}
	if hasRole {
		result.ExpertRole = role.ID
	}

	return result, nil
}

// Analytics returns the current analytics ledger snapshot.
func (e *Engine) Analytics(ctx context.Context) (ledger.Stats, error) {
	if e.ledger == nil {
		return ledger.Stats{}, nil
	}
	return e.ledger.Snapshot(ctx)
}

// ResetAnalytics clears the analytics ledger.
func (e *Engine) ResetAnalytics(ctx context.Context) error {
	if e.ledger == nil {
		return nil
	}
	return e.ledger.Reset(ctx)
}

// capInput truncates text to the input cap at a sentence boundary,
// falling back to a rune boundary when no sentence fits.
func capInput(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return truncate(text, limit)
}
