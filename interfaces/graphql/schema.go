package graphql

// SchemaString is the GraphQL schema served at /graphql. Operations the API
// declares for client compatibility but does not support (uploads via
// GraphQL, similarity search) resolve to NOT_IMPLEMENTED errors.
const SchemaString = `
schema {
    query: Query
    mutation: Mutation
}

scalar Time

enum SortBy {
    name
    lastModified
}

enum SortDirection {
    ASC
    DESC
}

enum AssetChangeType {
    ASSET_CREATED
    ASSET_UPDATED
    ASSET_REMOVED
}

type Query {
    asset(id: ID!, assetSourceId: ID! = "neos"): Asset
    assets(
        assetSourceId: ID! = "neos"
        tagId: ID
        assetCollectionId: ID
        mediaType: String! = ""
        searchTerm: String! = ""
        limit: Int! = 20
        offset: Int! = 0
        sortBy: SortBy! = lastModified
        sortDirection: SortDirection! = DESC
    ): [Asset!]!
    assetCount(
        assetSourceId: ID! = "neos"
        tagId: ID
        assetCollectionId: ID
        mediaType: String! = ""
        searchTerm: String! = ""
    ): Int!
    unusedAssets(limit: Int! = 20, offset: Int! = 0): [Asset!]!
    unusedAssetCount: Int!
    changedAssets(since: Time): ChangedAssets!
    similarAssets(id: ID!, assetSourceId: ID! = "neos"): [Asset!]!
    assetUsageDetails(id: ID!): [UsageDetailsGroup!]!
    assetUsageCount(id: ID!, assetSourceId: ID! = "neos"): Int!
    assetVariants(id: ID!): [AssetVariant!]!
    assetSources: [AssetSource!]!
    assetCollections: [AssetCollection!]!
    assetCollection(id: ID!): AssetCollection
    tags: [Tag!]!
    tag(id: ID!): Tag
    config: Config!
}

type Mutation {
    updateAsset(id: ID!, assetSourceId: ID! = "neos", label: String, caption: String, copyrightNotice: String): Asset
    tagAsset(id: ID!, assetSourceId: ID! = "neos", tag: String!): Asset
    untagAsset(id: ID!, assetSourceId: ID! = "neos", tag: String!): Asset
    setAssetTags(id: ID!, assetSourceId: ID! = "neos", tagIds: [ID!]!): Asset
    setAssetCollections(id: ID!, assetSourceId: ID! = "neos", assetCollectionIds: [ID!]!): Asset
    deleteAsset(id: ID!, assetSourceId: ID! = "neos"): Boolean!
    createAssetCollection(title: String!, parent: ID): AssetCollection
    updateAssetCollection(id: ID!, title: String, tagIds: [ID!]): Boolean!
    deleteAssetCollection(id: ID!): Boolean!
    setAssetCollectionParent(id: ID!, parent: ID!): Boolean!
    createTag(tag: String!): Tag
    updateTag(id: ID!, label: String!): Tag
    deleteTag(id: ID!): Boolean!
    replaceAsset(id: ID!, assetSourceId: ID! = "neos", filename: String!): Asset
    editAsset(id: ID!, assetSourceId: ID! = "neos", filename: String!): Asset
    importAsset(id: ID!, assetSourceId: ID!): Asset
    uploadFile(filename: String!): UploadResult!
    uploadFiles(filenames: [String!]!): [UploadResult!]!
}

type Asset {
    id: ID!
    assetSource: AssetSource!
    kind: String!
    label: String!
    caption: String!
    copyrightNotice: String!
    mediaType: String!
    filename: String!
    thumbnailUrl: String!
    lastModified: Time!
    tags: [Tag!]!
    collections: [AssetCollection!]!
    isInUse: Boolean!
}

type AssetSource {
    id: ID!
    label: String!
    description: String!
    iconUri: String!
    readOnly: Boolean!
    supportsTagging: Boolean!
    supportsCollections: Boolean!
}

type Tag {
    id: ID!
    label: String!
}

type AssetCollection {
    id: ID!
    title: String!
    parent: AssetCollection
    tags: [Tag!]!
    assetCount: Int!
}

type AssetChange {
    assetId: ID!
    type: AssetChangeType!
    lastModified: Time!
}

type ChangedAssets {
    lastModified: Time
    changes: [AssetChange!]!
}

type UsageDetailsGroup {
    serviceId: ID!
    label: String!
    usages: [Usage!]!
}

type Usage {
    label: String!
    url: String!
}

type AssetVariant {
    id: ID!
    label: String!
}

type UploadResult {
    success: Boolean!
    result: String!
}

type Config {
    uploadMaxFileSize: Int!
    uploadMaxFileUploadLimit: Int!
    currentServerTime: Time!
}
`
