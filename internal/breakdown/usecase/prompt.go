package usecase

import "fmt"

// breakdownSystemPrompt pins the assistant to fact-based, instruction-
// following output so the JSON-array mandate below actually holds.
const breakdownSystemPrompt = `You are a highly intelligent task-planning assistant. Your responses must be strictly professional, accurate, and fact-based. Only use the information provided in the input. Do not make assumptions, infer details not explicitly stated, or hallucinate any information. Adhere strictly to the instructions and provide concise, logical, and actionable outputs. You must not include any irrelevant content or deviate from the specified task requirements.`

// breakdownPromptTemplate asks for exactly %d subtasks at a given detail
// level, with existing subtask texts excluded and the response restricted
// to a bare JSON array of strings.
const breakdownPromptTemplate = `You are a professional assistant that generates highly structured and logically sequenced tasks. Follow these instructions carefully and produce output accordingly:

Create a JSON array of exactly %d subtasks for the main task: "%s". The subtasks must have a detail level determined by %d, defined as follows:
- Level 1: Very brief (1-2 sentences, less than 15 words per subtask).
- Level 2: Concise (2-3 sentences, 15-25 words per subtask).
- Level 3: Moderately detailed (2-4 sentences, 25-40 words per subtask).
- Level 4: Detailed (3-5 sentences, 40-60 words per subtask).
- Level 5: Highly detailed (5+ sentences, over 60 words per subtask, covering thorough instructions, examples, and rationale).

Ensure each subtask:
1. Is clear, actionable, and logically follows the previous subtask.
2. Avoids repeating any subtasks from this list: "%s".
3. Is directly related to the main task and logically builds toward its completion.
4. Is written at the requested detail level based on the scale above.

STRICT INSTRUCTIONS:
- Return the subtasks ONLY as a JSON array of strings.
- DO NOT include any numbering, special formatting, asterisks, backticks, or additional explanation.
- STRICTLY adhere to the requested detail level for each subtask.
- Example of desired format: ["Subtask 1", "Subtask 2", "Subtask 3"].

Output ONLY the JSON array of strings. DO NOT include any additional text, explanations, or formatting.`

// buildBreakdownPrompt builds the full user prompt for one request.
func buildBreakdownPrompt(task, excluded string, count, intensity int) string {
	return fmt.Sprintf(breakdownPromptTemplate, count, task, intensity, excluded)
}
