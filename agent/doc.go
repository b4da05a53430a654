// Package agent contains the Open Floor conversational agents of this
// repository and their shared dispatch plumbing. The package focuses on
// three concerns:
//
//  1. Identity, manifest and addressing plumbing (BaseAgent)
//  2. The echo agent the repository exists to demonstrate (ParrotAgent)
//  3. A model-backed conversational agent (AssistantAgent)
//
// Design principles:
//   - ProcessEnvelope is total: every internal failure becomes an in-band
//     response utterance, never an error to the caller
//   - Agents are purely functional per call; identity and manifest are fixed
//     at construction, so concurrent requests need no locking
//   - Dispatch switches exhaustively on the event kind; events not addressed
//     to the agent are skipped without error
//
// Embed BaseAgent and supply a respond function to build a new agent kind.
package agent
