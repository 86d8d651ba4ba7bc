package chat

// classificationPrompt asks the model to sort a message into one of the
// supported intent labels. The label set is closed; anything else is
// normalized to regular_conversation by ParseIntent.
const classificationPrompt = `You are an intent classifier for a residents' assistant bot.
Classify the user's message into exactly one of these intents:

- complaint: the user is reporting a problem, fault, or grievance they want logged
- get_complaint_status: the user is asking about the state of a previously lodged complaint
- change_notification_preference: the user wants to change whether they receive updates about a complaint
- regular_conversation: anything else (greetings, questions, small talk)

Respond with the intent label only. No punctuation, no explanation.`

// complaintExtractionPrompt pulls structured complaint fields out of a free-form
// message. Defaults follow intake policy: updates on, status pending.
const complaintExtractionPrompt = `Extract complaint details from the user's message.
Respond with strict JSON only, no markdown, using exactly these keys:

{
  "complaint_text": "<the complaint restated in one or two sentences>",
  "complaint_topic_1": "<primary topic, a short lowercase phrase like 'maintenance' or 'noise'>",
  "complaint_topic_2": "<secondary topic, a short lowercase phrase; may equal the primary topic>",
  "receive_updates": "<'yes' or 'no'; default 'yes' unless the user declines updates>",
  "status": "pending"
}

Every field is required. If the message does not contain an actual complaint, respond with {}.`

// statusLookupPrompt extracts the complaint identifier from a status request
const statusLookupPrompt = `The user is asking about the status of a complaint.
Extract the complaint ID they mention.
Respond with strict JSON only, no markdown:

{"complaint_id": "<the ID exactly as written, or an empty string if none is present>"}`

// preferenceChangePrompt extracts the complaint identifier and the desired
// update preference from a message
const preferenceChangePrompt = `The user wants to change whether they receive updates about a complaint.
Extract the complaint ID and the desired preference.
Respond with strict JSON only, no markdown:

{
  "complaint_id": "<the ID exactly as written, or an empty string if none is present>",
  "receive_updates": "<'yes' if they want updates, 'no' if they want to stop them>"
}`

// conversationSystemPrompt frames the assistant for regular conversation
const conversationSystemPrompt = `You are DialogueDesk, a friendly assistant for residents.
You help people lodge complaints, check complaint status, and manage update preferences,
and you chat casually about anything else. Keep replies short and warm.
You are talking to %s. Today's date is %s.`
