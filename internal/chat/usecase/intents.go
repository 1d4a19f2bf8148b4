package usecase

import (
	"context"
	"fmt"
	"strings"

	"career-advisor-bot/internal/chat"
)

// intentRule pairs a predicate-and-handler with its intent name. Rules are
// evaluated in declaration order; the first that returns ok terminates the
// turn. No rule runs twice and there is no scoring across rules.
type intentRule struct {
	intent Intent
	handle func(ctx context.Context, sess *chat.Session, in turnInput) (string, bool)
}

// greet answers fixed greeting tokens. Exact equality only. History is not
// mutated: a bare greeting carries no context worth replaying to the backend.
func (uc *implUseCase) greet(_ context.Context, sess *chat.Session, in turnInput) (string, bool) {
	if _, ok := greetingTokens[in.norm]; !ok {
		return "", false
	}

	var options []string
	if sess.Name != "" {
		options = []string{
			fmt.Sprintf("Hello, %s! How can I assist?", sess.Name),
			fmt.Sprintf("Hi there, %s! What career are you curious about?", sess.Name),
		}
	} else {
		options = []string{
			"Hello! How can I assist?",
			"Hi there! What career are you curious about?",
		}
	}

	return options[uc.pick(len(options))], true
}

// captureName remembers the user's name. The trigger is located in the
// normalized string and the name is sliced from the trimmed original at the
// same offset, preserving the user's capitalization before title-casing.
// A trigger that yields an empty name passes control to the next trigger;
// only when every trigger comes up empty does the rule decline the turn.
func (uc *implUseCase) captureName(_ context.Context, sess *chat.Session, in turnInput) (string, bool) {
	for _, trigger := range nameTriggers {
		idx := strings.Index(in.norm, trigger)
		if idx < 0 {
			continue
		}

		candidate := strings.TrimSpace(in.trimmed[idx+len(trigger):])
		if candidate == "" {
			continue
		}

		sess.Name = titleWords(candidate)

		reply := fmt.Sprintf(ReplyNameCapture, sess.Name)
		sess.Append(
			chat.Turn{Role: chat.RoleUser, Text: in.raw},
			chat.Turn{Role: chat.RoleModel, Text: reply},
		)
		return reply, true
	}

	return "", false
}

// listCategories enumerates every knowledge-base category once, in load
// order. With an empty knowledge base the rule never matches.
func (uc *implUseCase) listCategories(_ context.Context, sess *chat.Session, in turnInput) (string, bool) {
	if len(uc.kb.Categories()) == 0 {
		return "", false
	}

	matched := false
	for _, trigger := range listTriggers {
		if strings.Contains(in.norm, trigger) {
			matched = true
			break
		}
	}
	if !matched {
		return "", false
	}

	var b strings.Builder
	b.WriteString(ReplyCategoriesHeader)
	for _, cat := range uc.kb.Categories() {
		b.WriteString("**" + titleWords(cat.Name) + "**\n")
		b.WriteString(strings.Join(cat.Skills, ", "))
		b.WriteString("\n\n")
	}
	b.WriteString(ReplyCategoriesFooter)

	reply := b.String()
	sess.Append(
		chat.Turn{Role: chat.RoleUser, Text: in.raw},
		chat.Turn{Role: chat.RoleModel, Text: reply},
	)
	return reply, true
}

// lookupSkill renders a skill card when exactly one known skill name appears
// in the message. Zero matches fall through, and so do two or more; ambiguity
// is left for the backend to sort out rather than guessed at here.
func (uc *implUseCase) lookupSkill(_ context.Context, sess *chat.Session, in turnInput) (string, bool) {
	var matches []string
	for _, name := range uc.kb.SkillNames() {
		if strings.Contains(in.norm, name) {
			matches = append(matches, name)
		}
	}
	if len(matches) != 1 {
		return "", false
	}

	rec, _ := uc.kb.Skill(matches[0])
	reply := fmt.Sprintf(
		"**%s** is an excellent choice!\n\n"+
			"**Description:** %s\n\n"+
			"**Key Skills:** %s\n\n"+
			"**Common Tools:** %s\n\n"+
			"**Salary Range:** Approximately %s.\n\n"+
			"**Career Path:** %s",
		titleWords(matches[0]),
		orNA(rec.Description),
		joinOrNA(rec.KeySkills),
		joinOrNA(rec.Tools),
		orNA(rec.SalaryRange),
		orNA(rec.CareerPath),
	)

	sess.Append(
		chat.Turn{Role: chat.RoleUser, Text: in.raw},
		chat.Turn{Role: chat.RoleModel, Text: reply},
	)
	return reply, true
}

// backendFallback delegates everything the rules above declined. It always
// terminates the turn: backend failures are recovered into fixed apologies,
// never propagated to the caller.
func (uc *implUseCase) backendFallback(ctx context.Context, sess *chat.Session, in turnInput) (string, bool) {
	if !uc.backend.Available() {
		return ReplyBackendUnavailable, true
	}

	// First backend-bound turn: seed the persona exchange once. The phase
	// transition is irreversible for the session's lifetime.
	if !sess.BackendInitialized {
		sess.Append(
			chat.Turn{Role: chat.RoleUser, Text: personaInstructions},
			chat.Turn{Role: chat.RoleModel, Text: personaAck},
		)
		sess.BackendInitialized = true
	}

	reply, err := uc.backend.Continue(ctx, sess.History, in.raw)
	if err != nil {
		uc.l.Errorf(ctx, "chat usecase: backend call failed for user %s: %v", sess.UserID, err)
		return ReplyBackendTrouble, true
	}

	sess.Append(
		chat.Turn{Role: chat.RoleUser, Text: in.raw},
		chat.Turn{Role: chat.RoleModel, Text: reply},
	)
	return reply, true
}
