package discussion

import (
	"fmt"
	"strings"

	"github.com/hupe1980/moodpanel/core"
)

// votingCall opens the voting phase. It is spoken by the moderator verbatim
// rather than generated, so every discussion pivots to voting the same way.
const votingCall = "Let's move to our final assessments. I'd like each expert to cast their vote on the overall outlook."

// formatWindow renders transcript turns as "Speaker: content" blocks
// separated by blank lines, the shape experts see as recent discussion.
func formatWindow(turns []core.Turn) string {
	parts := make([]string, 0, len(turns))
	for _, t := range turns {
		parts = append(parts, fmt.Sprintf("%s: %s", t.Speaker, t.Content))
	}
	return strings.Join(parts, "\n\n")
}

func introductionPrompt(topic, subject, background string) string {
	return fmt.Sprintf(`Welcome everyone to today's expert panel discussion.

Topic: %s
Subject: %s

%s

As moderator, introduce this panel discussion in 2-3 sentences. Explain what we'll be examining and why it matters. Make it engaging and set the stage for expert analysis.`, topic, subject, background)
}

// openingCall is the moderator's scripted hand-off to the first expert.
func openingCall(firstRole, subject string) string {
	return fmt.Sprintf("Let's begin with our expert analyses. %s, what's your assessment of %s's situation?", firstRole, subject)
}

func openingAnalysisPrompt(role, subject, background, topic string) string {
	return fmt.Sprintf(`As the %s on this panel, provide your opening analysis of %s.

Context:
%s

Topic: %s

Give your expert perspective in 2-4 sentences. Be specific with data or examples where possible.`, role, subject, background, topic)
}

func routingPrompt(subject, window string, roster []string) string {
	return fmt.Sprintf(`You are the moderator of an expert panel discussing %s.

Recent discussion:
%s

Analyze the discussion and decide:
1. Have the experts provided sufficient diverse perspectives?
2. Are there any unresolved questions or contradictions?
3. Do we need to hear more from specific experts?

Available experts: %s

Respond in this exact format:
Continue: [Yes/No]
Target Experts: [comma-separated list of expert roles to follow up with, or "All" if everyone should respond, or "None" if discussion is complete]
Reason: [Brief explanation in 1 sentence]`, subject, window, strings.Join(roster, ", "))
}

func broadQuestionPrompt(subject, window string) string {
	return fmt.Sprintf(`Based on our discussion about %s:

%s

As moderator, pose a follow-up question or raise an important point that needs clarification. Be specific (1-2 sentences).`, subject, window)
}

func targetedQuestionPrompt(subject, window string, roles []string) string {
	return fmt.Sprintf(`Based on our discussion about %s:

%s

As moderator, pose a targeted follow-up question specifically for %s. Focus on their area of expertise and ask for deeper insights (1-2 sentences).`, subject, window, strings.Join(roles, ", "))
}

func debateReplyPrompt(round int, role, question, window string) string {
	return fmt.Sprintf(`Round %d - Follow-up question for you as %s:

Moderator's question: %s

Recent discussion context:
%s

Provide your expert response addressing the moderator's question. Be specific with evidence or examples (2-4 sentences).`, round, role, question, window)
}

func votePrompt(subject, window string) string {
	return fmt.Sprintf(`Based on our complete discussion about %s:

%s

Cast your final vote on the overall outlook/mood.

Respond in this exact format:
Vote: [Happy/Neutral/Sad]
Confidence: [0-100]
Reasoning: [Your explanation in 1-2 sentences based on your expertise]`, subject, window)
}

// voteStatement is how a decoded vote reads back in the transcript.
func voteStatement(vote core.Vote) string {
	return fmt.Sprintf("I vote %s with %d%% confidence. %s", vote.Mood, int(vote.Confidence*100), vote.Reasoning)
}

func conclusionPrompt(subject, window string, mood core.Mood, score float64) string {
	return fmt.Sprintf(`Our expert panel has completed their analysis of %s.

Discussion highlights:
%s

Final assessment: %s (Score: %.1f/100)

As moderator, provide a concluding statement that:
1. Summarizes the key findings from all experts
2. Explains the final verdict and what it means
3. Provides balanced perspective on strengths and challenges
4. Ends with an insightful closing thought

Keep it comprehensive but concise (4-5 sentences).`, subject, window, strings.ToUpper(mood.String()), score)
}

// defaultBackground stands in when the caller supplies no briefing material.
func defaultBackground(subject string) string {
	return fmt.Sprintf("Analyze the current state of %s based on recent developments.", subject)
}
