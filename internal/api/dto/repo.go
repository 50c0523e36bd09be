package dto

// ContributorDTO 单仓库内某位作者的累计行数
type ContributorDTO struct {
	Name         string `json:"name"`
	LinesAdded   int    `json:"linesAdded"`
	LinesRemoved int    `json:"linesRemoved"`
}

// RepositoryDTO 仓库贡献者汇总行
type RepositoryDTO struct {
	Name                 string            `json:"name"`
	Owner                string            `json:"owner"`
	URL                  string            `json:"url"`
	Contributors         []*ContributorDTO `json:"contributors"`
	NumberOfContributors int               `json:"numberOfContributors"`
	NumberOfLinesAdded   int               `json:"numberOfLinesAdded"`
	NumberOfLinesRemoved int               `json:"numberOfLinesRemoved"`
}

// RepoListQueryDTO 仓库列表查询参数。
// 三个数值区间参数为 "min,max" 字符串，作用在派生值上，拉取后内存过滤。
type RepoListQueryDTO struct {
	Start                *int   `form:"_start" binding:"omitempty,min=0"`
	End                  *int   `form:"_end" binding:"omitempty,min=0"`
	Sort                 string `form:"_sort" binding:"omitempty,oneof=name owner"`
	Order                string `form:"_order" binding:"omitempty,oneof=asc desc ASC DESC"`
	Name                 string `form:"name"`
	Owner                string `form:"owner"`
	URL                  string `form:"url"`
	NumberOfContributors string `form:"numberOfContributors"`
	NumberOfLinesAdded   string `form:"numberOfLinesAdded"`
	NumberOfLinesRemoved string `form:"numberOfLinesRemoved"`
}

// CommitterCountDTO 提交者计数行
type CommitterCountDTO struct {
	Committer string `json:"committer"`
	Count     int    `json:"count"`
	Timespan  string `json:"timespan"`
}

// CommitListQueryDTO 提交者排行查询参数
type CommitListQueryDTO struct {
	Start    *int   `form:"_start" binding:"omitempty,min=0"`
	End      *int   `form:"_end" binding:"omitempty,min=0"`
	Sort     string `form:"_sort" binding:"omitempty,oneof=committer count"`
	Order    string `form:"_order" binding:"omitempty,oneof=asc desc ASC DESC"`
	Filter   string `form:"_filter" binding:"omitempty,oneof=committer count"`
	Value    string `form:"_value"`
	Operator string `form:"_operator" binding:"omitempty,oneof=contains between"`
	Timespan string `form:"timespan" binding:"omitempty,oneof=1d 7d 14d 30d all"`
}
