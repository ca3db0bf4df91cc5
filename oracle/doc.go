// Package oracle is the boundary to the external reasoning service used
// for question classification and answer synthesis.
//
// Both operations run over the Completer interface, so any chat-capable
// backend can serve: the package ships an OpenAI-compatible client (with a
// Groq preset) built on sashabaranov/go-openai and an adapter for any
// langchaingo llms.Model.
//
// The Planner classifies a question into one of the four routing tools and
// fails with a MalformedResponseError when the oracle's output does not
// conform, so callers can substitute a default tool instead of crashing.
//
// The Responder synthesizes the final answer from a routing outcome.
// Retrieval-backed tools are grounded strictly in the supplied evidence;
// direct answers are conversational; empty evidence yields a deterministic
// per-tool message without an oracle call.
//
//	completer, err := oracle.NewGroqCompleter(os.Getenv("GROQ_API_KEY"))
//	if err != nil {
//		return err
//	}
//
//	planner := oracle.NewPlanner(completer)
//	plan, err := planner.Plan(ctx, "Who is the CEO of OpenAI?")
//
//	responder := oracle.NewResponder(completer)
//	answer, err := responder.Respond(ctx, question, outcome.Tool, plan.Reason, outcome)
package oracle
