package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podscribe-api/api/types"
)

// GetSearch runs a full-text query over part text
// @Summary      Search transcripts
// @Description  Returns ranked part matches hydrated with their part, episode and approval rows
// @Tags         episodes
// @Security     BearerAuth
// @Produce      json
// @Param        query query string true "Search query"
// @Success      200 {object} types.SearchResponse
// @Failure      400 {object} types.ErrorResponse "Missing query"
// @Router       /api/episodes/search [get]
func GetSearch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		if query == "" {
			types.SendBadRequest(c, "Query parameter 'query' is required")
			return
		}

		hits, err := deps.SearchIndex.Search(query, 25)
		if err != nil {
			types.SendInternalError(c, "Search failed")
			return
		}

		results := make([]types.SearchHit, 0, len(hits))
		partIDs := make([]uint, 0, len(hits))
		for _, hit := range hits {
			result := types.SearchHit{PartID: hit.PartID, Score: hit.Score, Approvals: nil}

			// A hit whose part vanished since the last index sync is kept
			// with the score only, the rebuild endpoint reconciles those
			part, err := deps.PartService.GetPartByID(c.Request.Context(), hit.PartID)
			if err == nil {
				result.Part = part
				partIDs = append(partIDs, hit.PartID)

				if episode, err := deps.EpisodeService.GetEpisodeByID(c.Request.Context(), part.EpisodeID); err == nil {
					result.Episode = episode
				}
			}
			results = append(results, result)
		}

		approvals, err := deps.ApprovalService.ListByParts(c.Request.Context(), partIDs)
		if err == nil {
			byPart := make(map[uint][]int)
			for i, approval := range approvals {
				byPart[approval.PartID] = append(byPart[approval.PartID], i)
			}
			for i := range results {
				for _, j := range byPart[results[i].PartID] {
					results[i].Approvals = append(results[i].Approvals, approvals[j])
				}
			}
		}

		c.JSON(http.StatusOK, types.SearchResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Query:        query,
			Count:        len(results),
			Hits:         results,
		})
	}
}
