package discussion

import (
	"strings"

	"github.com/hupe1980/moodpanel/core"
	"github.com/hupe1980/moodpanel/parse"
)

// introduce has the moderator open the discussion. The introduction is a
// phase-level turn; it carries no round tag.
func (o *Orchestrator) introduce(rc *core.RunContext) (string, error) {
	rc.LogInfo("discussion.phase", "phase", "introduction")

	prompt := introductionPrompt(rc.Topic, rc.SubjectID, rc.Background)
	introduction := o.moderator.Respond(rc, prompt)

	if _, err := rc.AppendTurn(o.moderator.Role(), introduction, 0); err != nil {
		return "", err
	}
	return introduction, nil
}

// openingAnalyses runs round one: a scripted moderator hand-off to the first
// seat, then one opening analysis per expert. Opening prompts carry the
// briefing material rather than a transcript window, so round one reads the
// same in sequential and concurrent mode.
func (o *Orchestrator) openingAnalyses(rc *core.RunContext) ([]core.Analysis, error) {
	rc.LogInfo("discussion.phase", "phase", "analysis", "round", 1)

	if _, err := rc.AppendTurn(o.moderator.Role(), openingCall(o.roster[0], rc.SubjectID), 1); err != nil {
		return nil, err
	}

	var analyses []core.Analysis

	err := o.fanOut(rc, o.experts,
		func(role string) string {
			return openingAnalysisPrompt(role, rc.SubjectID, rc.Background, rc.Topic)
		},
		func(role, text string) error {
			analyses = append(analyses, core.Analysis{Role: role, Text: text, Round: 1})
			_, err := rc.AppendTurn(role, text, 1)
			return err
		},
	)
	return analyses, err
}

// debate runs rounds two onward until the moderator stops it or the round
// budget runs out. The returned count is the number of rounds actually held,
// opening round included.
func (o *Orchestrator) debate(rc *core.RunContext) ([]core.Analysis, int, error) {
	var analyses []core.Analysis

	round := 2
	for round <= rc.MaxRounds {
		if err := rc.Err(); err != nil {
			return nil, 0, err
		}

		rc.LogInfo("discussion.phase", "phase", "debate", "round", round)

		decision := o.decideFollowUp(rc, round)
		if !decision.Continue {
			rc.LogInfo("discussion.converged", "round", round, "reason", decision.Reason)
			break
		}

		roundAnalyses, err := o.debateRound(rc, round, decision.Targets)
		if err != nil {
			return nil, 0, err
		}
		analyses = append(analyses, roundAnalyses...)
		round++
	}

	return analyses, round - 1, nil
}

// decideFollowUp asks the moderator whether the debate should go on and who
// should speak. The exchange is ephemeral: neither the prompt nor the
// moderator's answer lands in the transcript, only the decoded decision
// drives the flow.
func (o *Orchestrator) decideFollowUp(rc *core.RunContext, round int) core.RoutingDecision {
	window := formatWindow(rc.Recent(routingWindow))
	response := o.moderator.Respond(rc, routingPrompt(rc.SubjectID, window, o.roster))

	decision := parse.Routing(response, o.roster)

	rc.LogInfo("discussion.routing",
		"round", round,
		"continue", decision.Continue,
		"targets", strings.Join(decision.Targets, ", "),
		"reason", decision.Reason,
	)

	return decision
}

// debateRound holds one follow-up round: the moderator poses a generated
// question, then each targeted expert answers it. An empty target list means
// the moderator wants everyone.
func (o *Orchestrator) debateRound(rc *core.RunContext, round int, targets []string) ([]core.Analysis, error) {
	panelists := o.panelistsFor(targets)
	if len(panelists) == 0 {
		panelists = o.experts
	}

	window := formatWindow(rc.Recent(debateQuestionWindow))

	var prompt string
	if len(panelists) == len(o.experts) {
		prompt = broadQuestionPrompt(rc.SubjectID, window)
	} else {
		roles := make([]string, 0, len(panelists))
		for _, p := range panelists {
			roles = append(roles, p.Role())
		}
		prompt = targetedQuestionPrompt(rc.SubjectID, window, roles)
	}

	question := o.moderator.Respond(rc, prompt)
	if _, err := rc.AppendTurn(o.moderator.Role(), question, round); err != nil {
		return nil, err
	}

	var analyses []core.Analysis

	err := o.fanOut(rc, panelists,
		func(role string) string {
			return debateReplyPrompt(round, role, question, formatWindow(rc.Recent(debateReplyWindow)))
		},
		func(role, text string) error {
			analyses = append(analyses, core.Analysis{Role: role, Text: text, Round: round})
			_, err := rc.AppendTurn(role, text, round)
			return err
		},
	)
	return analyses, err
}

// voting closes the debate: a fixed moderator call, then one vote per
// expert. The discussion window is computed once before the first ballot so
// every expert votes on the same view of the debate. Each decoded vote is
// read back into the transcript as a plain-language statement.
func (o *Orchestrator) voting(rc *core.RunContext) ([]core.Vote, error) {
	rc.LogInfo("discussion.phase", "phase", "voting")

	if _, err := rc.AppendTurn(o.moderator.Role(), votingCall, 0); err != nil {
		return nil, err
	}

	window := formatWindow(rc.Recent(votingWindow))

	var votes []core.Vote

	err := o.fanOut(rc, o.experts,
		func(role string) string {
			return votePrompt(rc.SubjectID, window)
		},
		func(role, text string) error {
			vote := parse.Vote(role, text)
			votes = append(votes, vote)

			rc.LogInfo("discussion.vote", "role", role, "mood", vote.Mood.String(), "confidence", vote.Confidence)

			_, err := rc.AppendTurn(role, voteStatement(vote), 0)
			return err
		},
	)
	return votes, err
}

// conclude has the moderator wrap up against the already-computed verdict.
func (o *Orchestrator) conclude(rc *core.RunContext, finalMood core.Mood, finalScore float64) (string, error) {
	rc.LogInfo("discussion.phase", "phase", "conclusion")

	window := formatWindow(rc.Recent(conclusionWindow))
	conclusion := o.moderator.Respond(rc, conclusionPrompt(rc.SubjectID, window, finalMood, finalScore))

	if _, err := rc.AppendTurn(o.moderator.Role(), conclusion, 0); err != nil {
		return "", err
	}
	return conclusion, nil
}
