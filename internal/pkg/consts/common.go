package consts

// BotCommitAuthor GitHub 合并机器人的提交作者占位，统计贡献者时排除
const BotCommitAuthor = "web-flow"
