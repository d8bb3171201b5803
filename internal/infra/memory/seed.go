package memory

import "hanzi-quiz-service/internal/domain"

// DefaultSeed returns the curated HSK 2-4 level starter set. It is loaded
// through the bank's own Add so ids come from the counter; swap it for the
// Postgres seed source in deployments with a managed question table.
func DefaultSeed() []domain.QuestionDraft {
	return []domain.QuestionDraft{
		{
			SourceText:   "你喜欢吃什么水果？",
			PhoneticHint: "Nǐ xǐhuān chī shénme shuǐguǒ?",
			Options: []string{
				"What fruit do you like to eat?",
				"What food do you prefer?",
				"Do you like to eat fruit?",
				"What vegetables do you like?",
			},
			CorrectIndex: 0,
		},
		{
			SourceText:   "明天我要去图书馆学习。",
			PhoneticHint: "Míngtiān wǒ yào qù túshūguǎn xuéxí.",
			Options: []string{
				"Yesterday I went to the bookstore.",
				"Tomorrow I will go to the library to study.",
				"I want to learn at the museum tomorrow.",
				"I like to read books at home.",
			},
			CorrectIndex: 1,
		},
		{
			SourceText:   "这件衣服多少钱？",
			PhoneticHint: "Zhè jiàn yīfu duōshǎo qián?",
			Options: []string{
				"Do you have this in another color?",
				"Where did you buy this dress?",
				"How much does this piece of clothing cost?",
				"Is this shirt too expensive?",
			},
			CorrectIndex: 2,
		},
		{
			SourceText:   "我的朋友住在北京。",
			PhoneticHint: "Wǒ de péngyǒu zhù zài Běijīng.",
			Options: []string{
				"My friend is visiting Beijing.",
				"I want to live in Beijing.",
				"Do you know anyone in Beijing?",
				"My friend lives in Beijing.",
			},
			CorrectIndex: 3,
		},
		{
			SourceText:   "请问，附近有地铁站吗？",
			PhoneticHint: "Qǐngwèn, fùjìn yǒu dìtiě zhàn ma?",
			Options: []string{
				"Excuse me, is there a subway station nearby?",
				"Where is the nearest bus stop?",
				"How far is the train station?",
				"Can you tell me the way to the airport?",
			},
			CorrectIndex: 0,
		},
		{
			SourceText:   "我每天早上跑步。",
			PhoneticHint: "Wǒ měitiān zǎoshang pǎobù.",
			Options: []string{
				"I like to go hiking on weekends.",
				"I run every morning.",
				"Do you exercise every day?",
				"Yesterday morning I went for a run.",
			},
			CorrectIndex: 1,
		},
		{
			SourceText:   "今天天气很好。",
			PhoneticHint: "Jīntiān tiānqì hěn hǎo.",
			Options: []string{
				"Will it rain tomorrow?",
				"I don't like cold weather.",
				"The weather is very good today.",
				"It's very hot this summer.",
			},
			CorrectIndex: 2,
		},
		{
			SourceText:   "我想学习中文因为很有用。",
			PhoneticHint: "Wǒ xiǎng xuéxí Zhōngwén yīnwèi hěn yǒuyòng.",
			Options: []string{
				"Chinese is too difficult to learn.",
				"Do you speak Chinese?",
				"I don't think Chinese is useful.",
				"I want to learn Chinese because it's very useful.",
			},
			CorrectIndex: 3,
		},
		{
			SourceText:   "我昨天看了一部电影。",
			PhoneticHint: "Wǒ zuótiān kànle yī bù diànyǐng.",
			Options: []string{
				"I watched a movie yesterday.",
				"I'm going to watch TV tomorrow.",
				"I like to watch movies at home.",
				"What movie do you want to see?",
			},
			CorrectIndex: 0,
		},
		{
			SourceText:   "这个周末你有什么计划？",
			PhoneticHint: "Zhège zhōumò nǐ yǒu shénme jìhuà?",
			Options: []string{
				"What did you do last weekend?",
				"What plans do you have for this weekend?",
				"Are you free next weekend?",
				"Do you like weekends?",
			},
			CorrectIndex: 1,
		},
		{
			SourceText:   "你会说英语吗？",
			PhoneticHint: "Nǐ huì shuō Yīngyǔ ma?",
			Options: []string{
				"Do you speak English?",
				"Are you from England?",
				"I can speak Chinese.",
				"Do you want to learn English?",
			},
			CorrectIndex: 0,
		},
		{
			SourceText:   "他们是我的好朋友。",
			PhoneticHint: "Tāmen shì wǒ de hǎo péngyǒu.",
			Options: []string{
				"He is my best friend.",
				"They are my good friends.",
				"We have been friends for a long time.",
				"Do you want to be my friend?",
			},
			CorrectIndex: 1,
		},
		{
			SourceText:   "我不知道怎么去那里。",
			PhoneticHint: "Wǒ bù zhīdào zěnme qù nàlǐ.",
			Options: []string{
				"I want to go there.",
				"Have you been there before?",
				"I don't know how to get there.",
				"Can you show me the way?",
			},
			CorrectIndex: 2,
		},
		{
			SourceText:   "请给我一杯咖啡。",
			PhoneticHint: "Qǐng gěi wǒ yì bēi kāfēi.",
			Options: []string{
				"Do you have tea?",
				"Is the coffee good here?",
				"How much is a cup of coffee?",
				"Please give me a cup of coffee.",
			},
			CorrectIndex: 3,
		},
		{
			SourceText:   "我想买一本书。",
			PhoneticHint: "Wǒ xiǎng mǎi yì běn shū.",
			Options: []string{
				"I want to buy a book.",
				"Can you recommend a good book?",
				"I like to read books.",
				"Where is the bookstore?",
			},
			CorrectIndex: 0,
		},
	}
}

// SeedBank adds every draft to the bank and returns the stored questions.
func SeedBank(bank *QuestionBank, drafts []domain.QuestionDraft) []domain.Question {
	questions := make([]domain.Question, 0, len(drafts))
	for _, draft := range drafts {
		questions = append(questions, bank.Add(draft))
	}
	return questions
}
