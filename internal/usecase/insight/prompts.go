package insight

// extractionPrompt asks the model to distill a meeting transcript into a
// summary, key points, and action items. The response must be strict JSON so
// the parser can reject anything malformed.
const extractionPrompt = `You are a meeting analyst. Read the transcript and produce meeting insights.
Respond with strict JSON only, no markdown, using exactly these keys:

{
  "Summary": "<a concise paragraph summarizing the meeting>",
  "key_points_discussed": ["<key point>", "..."],
  "action_items": ["<action item with owner if mentioned>", "..."]
}

Every key is required. Use empty arrays when the transcript contains no key
points or action items. Do not invent content that is not in the transcript.`
